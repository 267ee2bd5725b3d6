package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/petbuddy/pkg/logger"
)

// Key represents a context value key exported for reuse.
type Key string

const (
	KeyRemoteAddr Key = "remote_addr"
	KeyUserAgent  Key = "user_agent"
	KeySessionID  Key = "session_id"

	keyRequestID Key = "request_id"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Adapter converts fasthttp.RequestCtx into a stdlib context with deadlines and metadata.
type Adapter struct {
	timeout time.Duration
}

// NewAdapter constructs a new Adapter using the provided timeout.
func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{
		timeout: timeout,
	}
}

// Attach creates a context with timeout derived from the adapter and enriches it with request metadata.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := RequestID(ctx)
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)

	if remoteAddr := ctx.RemoteAddr(); remoteAddr != nil {
		stdCtx = context.WithValue(stdCtx, KeyRemoteAddr, remoteAddr.String())
	}
	if ua := string(ctx.Request.Header.UserAgent()); ua != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserAgent, ua)
	}
	if sid := SessionID(ctx); sid != "" {
		stdCtx = context.WithValue(stdCtx, KeySessionID, sid)
	}

	return stdCtx, cancel
}

// RequestID returns the id of the current request, assigning one on first use.
// The id is echoed in the response header.
func RequestID(ctx *fasthttp.RequestCtx) string {
	if ctx == nil {
		return uuid.NewString()
	}
	if id, ok := ctx.UserValue(string(keyRequestID)).(string); ok && id != "" {
		return id
	}
	id := string(ctx.Request.Header.Peek(RequestIDHeader))
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}
	ctx.SetUserValue(string(keyRequestID), id)
	ctx.Response.Header.Set(RequestIDHeader, id)
	return id
}

// SetSessionID records the visitor session id resolved by middleware.
func SetSessionID(ctx *fasthttp.RequestCtx, id string) {
	ctx.SetUserValue(string(KeySessionID), id)
}

// SessionID returns the visitor session id recorded for this request.
func SessionID(ctx *fasthttp.RequestCtx) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.UserValue(string(KeySessionID)).(string)
	return id
}
