package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/petbuddy/api/handler"
	"github.com/fastygo/petbuddy/internal/config"
	"github.com/fastygo/petbuddy/internal/middleware"
	"github.com/fastygo/petbuddy/internal/router"
	"github.com/fastygo/petbuddy/internal/services/janitor"
	"github.com/fastygo/petbuddy/internal/services/lifecycle"
	"github.com/fastygo/petbuddy/internal/view"
	"github.com/fastygo/petbuddy/pkg/httpcontext"
	"github.com/fastygo/petbuddy/pkg/logger"
	"github.com/fastygo/petbuddy/repository/memory"
	"github.com/fastygo/petbuddy/repository/static"
	"github.com/fastygo/petbuddy/usecase"
	catalogUC "github.com/fastygo/petbuddy/usecase/catalog"
	visitorUC "github.com/fastygo/petbuddy/usecase/visitor"
	"github.com/fastygo/petbuddy/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:       cfg.Logger.Level,
		Encoding:    cfg.Logger.Encoding,
		Service:     cfg.AppName,
		Environment: cfg.Environment,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	doc, err := static.Load(cfg.Content.ReferenceDataPath)
	if err != nil {
		zapLogger.Fatal("reference data failed to load", zap.Error(err))
	}
	zapLogger.Info("reference data loaded",
		zap.Int("employees", len(doc.Employees)),
		zap.Int("plans", len(doc.Plans)),
	)

	renderer, err := view.New(web.Files, cfg.AppName)
	if err != nil {
		zapLogger.Fatal("templates failed to load", zap.Error(err))
	}
	staticFiles, err := apiHandler.NewStaticHandler(web.Files, "static")
	if err != nil {
		zapLogger.Fatal("static assets unavailable", zap.Error(err))
	}

	catalogRepo := static.NewCatalogRepository(doc)
	sessionRepo := memory.NewSessionRepository()

	sweeper := janitor.New(sessionRepo, cfg.Session.SweepInterval, zapLogger)
	sweeper.Start()
	manager.Register("session_janitor", func(ctx context.Context) error {
		sweeper.Stop(ctx)
		return nil
	})

	catalogUseCase := catalogUC.New(catalogRepo, zapLogger)
	visitorUseCase := visitorUC.New(sessionRepo, catalogRepo, usecase.NewSiteDispatcher(), cfg.Session.TTL, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)
	cookies := middleware.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		TTL:    cfg.Session.TTL,
	}

	handlers := router.Handlers{
		Site:    apiHandler.NewSiteHandler(visitorUseCase, catalogUseCase, renderer, ctxAdapter, cookies, zapLogger),
		State:   apiHandler.NewStateHandler(visitorUseCase, ctxAdapter, cookies, zapLogger),
		Catalog: apiHandler.NewCatalogHandler(catalogUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(sweeper, ctxAdapter, zapLogger),
		Static:  staticFiles,
	}

	r := router.New(handlers, zapLogger)

	server := &fasthttp.Server{
		Handler:      router.Chain(r.Handler, middleware.AccessLog(zapLogger), cookies.Middleware),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()), zap.String("env", cfg.Environment))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
