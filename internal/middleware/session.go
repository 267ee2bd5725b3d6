package middleware

import (
	"time"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/petbuddy/pkg/httpcontext"
)

// SessionCookie reads and writes the visitor session cookie.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Middleware copies the session id from the request cookie into the request context.
// It does not create sessions; handlers do that through the visitor use case.
func (c SessionCookie) Middleware(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if id := ctx.Request.Header.Cookie(c.Name); len(id) > 0 {
			httpcontext.SetSessionID(ctx, string(id))
		}
		next(ctx)
	}
}

// Write sets the session cookie to sessionID, or expires it when sessionID is empty.
func (c SessionCookie) Write(ctx *fasthttp.RequestCtx, sessionID string) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(c.Name)
	cookie.SetValue(sessionID)
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetSecure(c.Secure)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	switch {
	case sessionID == "":
		// Same name and path as the live cookie, otherwise the browser keeps it.
		cookie.SetExpire(fasthttp.CookieExpireDelete)
	case c.TTL > 0:
		cookie.SetMaxAge(int(c.TTL.Seconds()))
	}
	ctx.Response.Header.SetCookie(cookie)
}
