package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/api/transport"
	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/pkg/httpcontext"
	appLogger "github.com/fastygo/petbuddy/pkg/logger"
)

// SessionWriter hands a visitor session id back to the browser.
type SessionWriter interface {
	Write(ctx *fasthttp.RequestCtx, sessionID string)
}

type baseHandler struct {
	adapter  *httpcontext.Adapter
	logger   *zap.Logger
	sessions SessionWriter
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger, sessions SessionWriter) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger, sessions: sessions}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

// bindSession re-issues the session cookie on every resolved request so its
// Max-Age follows the idle TTL the server extends.
func (h baseHandler) bindSession(ctx *fasthttp.RequestCtx, sessionID string) {
	if h.sessions == nil || sessionID == "" {
		return
	}
	h.sessions.Write(ctx, sessionID)
	httpcontext.SetSessionID(ctx, sessionID)
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, nil))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code := mapError(err)
	if status >= http.StatusInternalServerError {
		h.log(ctx).Error("request failed", zap.Error(err))
	}
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), nil))
}

func (h baseHandler) respondHTML(ctx *fasthttp.RequestCtx, status int, body []byte) {
	ctx.Response.Header.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (h baseHandler) log(ctx *fasthttp.RequestCtx) *zap.Logger {
	reqCtx := appLogger.ContextWithRequestID(context.Background(), httpcontext.RequestID(ctx))
	return appLogger.WithRequestID(reqCtx, h.logger)
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, string(domain.ErrCodeInvalid)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}
