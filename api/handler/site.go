package handler

import (
	"bytes"
	"context"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/internal/view"
	"github.com/fastygo/petbuddy/pkg/httpcontext"
	catalogUC "github.com/fastygo/petbuddy/usecase/catalog"
	visitorUC "github.com/fastygo/petbuddy/usecase/visitor"
)

// SiteHandler serves the HTML pages and the form actions behind them.
type SiteHandler struct {
	baseHandler
	visitors *visitorUC.UseCase
	catalog  *catalogUC.UseCase
	renderer *view.Renderer
}

func NewSiteHandler(visitors *visitorUC.UseCase, catalog *catalogUC.UseCase, renderer *view.Renderer, adapter *httpcontext.Adapter, sessions SessionWriter, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		baseHandler: newBaseHandler(adapter, logger, sessions),
		visitors:    visitors,
		catalog:     catalog,
		renderer:    renderer,
	}
}

// Index renders the visitor's current page.
func (h *SiteHandler) Index(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.renderCurrent(ctx, stdCtx)
}

// DeepLink navigates to the page named in the path and renders it.
func (h *SiteHandler) DeepLink(ctx *fasthttp.RequestCtx) {
	name, _ := ctx.UserValue("name").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if !h.apply(ctx, stdCtx, domain.SetPage(name)) {
		return
	}
	h.renderCurrent(ctx, stdCtx)
}

// Directory opens the directory with the search term from the query string.
func (h *SiteHandler) Directory(ctx *fasthttp.RequestCtx) {
	term := string(ctx.QueryArgs().Peek("q"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if !h.apply(ctx, stdCtx, domain.SetPage(domain.PageDirectory.String())) {
		return
	}
	if !h.apply(ctx, stdCtx, domain.SetSearch(term)) {
		return
	}
	h.renderCurrent(ctx, stdCtx)
}

// SetPage handles the navigation buttons.
func (h *SiteHandler) SetPage(ctx *fasthttp.RequestCtx) {
	h.actionThenRedirect(ctx, domain.SetPage(string(ctx.FormValue("page"))))
}

// ToggleTheme handles the theme button.
func (h *SiteHandler) ToggleTheme(ctx *fasthttp.RequestCtx) {
	h.actionThenRedirect(ctx, domain.ToggleTheme())
}

// SetSearch handles the directory search form.
func (h *SiteHandler) SetSearch(ctx *fasthttp.RequestCtx) {
	h.actionThenRedirect(ctx, domain.SetSearch(string(ctx.FormValue("q"))))
}

// NotFound renders the not-found page for unknown routes without changing visitor state.
func (h *SiteHandler) NotFound(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	visit, err := h.visitors.Snapshot(stdCtx, httpcontext.SessionID(ctx))
	if err != nil {
		h.respondPageError(ctx, err)
		return
	}
	h.bindSession(ctx, visit.SessionID)

	state := visit.State
	state.Page = domain.PageNotFound
	h.render(ctx, stdCtx, state, false)
}

func (h *SiteHandler) actionThenRedirect(ctx *fasthttp.RequestCtx, action domain.Action) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if !h.apply(ctx, stdCtx, action) {
		return
	}
	ctx.Response.Header.Set("Location", "/")
	ctx.SetStatusCode(http.StatusSeeOther)
}

func (h *SiteHandler) apply(ctx *fasthttp.RequestCtx, stdCtx context.Context, action domain.Action) bool {
	visit, err := h.visitors.Dispatch(stdCtx, httpcontext.SessionID(ctx), action)
	if err != nil {
		h.respondPageError(ctx, err)
		return false
	}
	h.bindSession(ctx, visit.SessionID)
	return true
}

func (h *SiteHandler) renderCurrent(ctx *fasthttp.RequestCtx, stdCtx context.Context) {
	visit, err := h.visitors.View(stdCtx, httpcontext.SessionID(ctx))
	if err != nil {
		h.respondPageError(ctx, err)
		return
	}
	h.bindSession(ctx, visit.SessionID)
	h.render(ctx, stdCtx, visit.State, visit.ScrollToTop)
}

func (h *SiteHandler) render(ctx *fasthttp.RequestCtx, stdCtx context.Context, state domain.StateSnapshot, scroll bool) {
	plans, err := h.catalog.Plans(stdCtx)
	if err != nil {
		h.respondPageError(ctx, err)
		return
	}

	status := http.StatusOK
	if state.Page == domain.PageNotFound {
		status = http.StatusNotFound
	}

	var body bytes.Buffer
	if err := h.renderer.Render(&body, h.renderer.NewData(state, plans, scroll)); err != nil {
		h.respondPageError(ctx, err)
		return
	}
	h.respondHTML(ctx, status, body.Bytes())
}

func (h *SiteHandler) respondPageError(ctx *fasthttp.RequestCtx, err error) {
	status, _ := mapError(err)
	h.log(ctx).Error("page request failed", zap.Int("status", status), zap.Error(err))
	ctx.Error(http.StatusText(status), status)
}
