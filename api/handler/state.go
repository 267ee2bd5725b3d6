package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/api/transport"
	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/pkg/httpcontext"
	visitorUC "github.com/fastygo/petbuddy/usecase/visitor"
)

// StateHandler exposes the visitor state store as JSON.
type StateHandler struct {
	baseHandler
	visitors *visitorUC.UseCase
}

func NewStateHandler(visitors *visitorUC.UseCase, adapter *httpcontext.Adapter, sessions SessionWriter, logger *zap.Logger) *StateHandler {
	return &StateHandler{
		baseHandler: newBaseHandler(adapter, logger, sessions),
		visitors:    visitors,
	}
}

// @Summary Current visitor state
// @Tags state
// @Router /api/v1/state [get]
func (h *StateHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	visit, err := h.visitors.Snapshot(stdCtx, httpcontext.SessionID(ctx))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.bindSession(ctx, visit.SessionID)
	h.respondSuccess(ctx, http.StatusOK, transport.NewStateResponse(visit.State, visit.ScrollToTop))
}

// @Summary Apply an action
// @Tags state
// @Accept json
// @Produce json
// @Router /api/v1/actions [post]
func (h *StateHandler) Dispatch(ctx *fasthttp.RequestCtx) {
	var req transport.ActionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Type == "" {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	visit, err := h.visitors.Dispatch(stdCtx, httpcontext.SessionID(ctx), req.Action())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.bindSession(ctx, visit.SessionID)
	h.respondSuccess(ctx, http.StatusOK, transport.NewStateResponse(visit.State, visit.ScrollToTop))
}

// @Summary End the visitor session
// @Tags state
// @Router /api/v1/session [delete]
func (h *StateHandler) End(ctx *fasthttp.RequestCtx) {
	sessionID := httpcontext.SessionID(ctx)
	if sessionID == "" {
		h.respondError(ctx, domain.ErrSessionNotFound)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.visitors.End(stdCtx, sessionID); err != nil {
		h.respondError(ctx, err)
		return
	}
	if h.sessions != nil {
		h.sessions.Write(ctx, "")
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}
