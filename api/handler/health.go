package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/api/transport"
	"github.com/fastygo/petbuddy/internal/services/janitor"
	"github.com/fastygo/petbuddy/pkg/httpcontext"
)

// StatusSource reports session counts and the state of the session janitor.
type StatusSource interface {
	Status() janitor.Status
	Live(ctx context.Context) (int, error)
}

type HealthHandler struct {
	baseHandler
	source StatusSource
}

func NewHealthHandler(source StatusSource, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger, nil),
		source:      source,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	status := h.source.Status()
	healthy := status.Healthy
	live, err := h.source.Live(stdCtx)
	if err != nil {
		h.log(ctx).Warn("session count failed", zap.Error(err))
		healthy = false
	}

	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"sessions": map[string]interface{}{
			"live":          live,
			"at_last_sweep": status.Sessions,
			"removed":       status.Removed,
			"last_sweep":    status.LastSweep,
		},
	}

	if healthy {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	env := transport.NewError("DEGRADED", "session store unhealthy", payload)
	h.log(ctx).Warn("health degraded", zap.Stringer("response", env))
	h.respondJSON(ctx, http.StatusServiceUnavailable, env)
}
