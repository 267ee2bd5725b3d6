package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/api/transport"
	"github.com/fastygo/petbuddy/pkg/httpcontext"
	catalogUC "github.com/fastygo/petbuddy/usecase/catalog"
)

// CatalogHandler serves the reference data without touching visitor state.
type CatalogHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewCatalogHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		baseHandler: newBaseHandler(adapter, logger, nil),
		uc:          uc,
	}
}

// @Summary Search the team directory
// @Tags catalog
// @Router /api/v1/employees [get]
func (h *CatalogHandler) Employees(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	employees, err := h.uc.Search(stdCtx, query)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(employees, transport.ListMeta{Total: len(employees), Query: query}))
}

// @Summary List product plans
// @Tags catalog
// @Router /api/v1/plans [get]
func (h *CatalogHandler) Plans(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	plans, err := h.uc.Plans(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(plans, transport.ListMeta{Total: len(plans)}))
}
