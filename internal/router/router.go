package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/petbuddy/api/handler"
)

type Handlers struct {
	Site    *apiHandler.SiteHandler
	State   *apiHandler.StateHandler
	Catalog *apiHandler.CatalogHandler
	Health  *apiHandler.HealthHandler
	Static  *apiHandler.StaticHandler
}

// Middleware wraps a request handler.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, logger *zap.Logger) *router.Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := router.New()

	r.GET("/health", handlers.Health.Check)
	r.GET("/static/{filepath:*}", handlers.Static.Serve)

	// Pages
	r.GET("/", handlers.Site.Index)
	r.GET("/page/{name}", handlers.Site.DeepLink)
	r.GET("/directory", handlers.Site.Directory)

	// Form actions
	r.POST("/actions/page", handlers.Site.SetPage)
	r.POST("/actions/theme", handlers.Site.ToggleTheme)
	r.POST("/actions/search", handlers.Site.SetSearch)

	// JSON API
	r.GET("/api/v1/state", handlers.State.Get)
	r.POST("/api/v1/actions", handlers.State.Dispatch)
	r.DELETE("/api/v1/session", handlers.State.End)
	r.GET("/api/v1/employees", handlers.Catalog.Employees)
	r.GET("/api/v1/plans", handlers.Catalog.Plans)

	r.NotFound = handlers.Site.NotFound
	r.PanicHandler = func(ctx *fasthttp.RequestCtx, rcv interface{}) {
		logger.Error("handler panic", zap.Any("panic", rcv), zap.ByteString("path", ctx.Path()))
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusInternalServerError), fasthttp.StatusInternalServerError)
	}

	return r
}

// Chain applies middleware so that the first one listed runs outermost.
func Chain(h fasthttp.RequestHandler, middleware ...Middleware) fasthttp.RequestHandler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
