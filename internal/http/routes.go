package http

import (
	"context"

	"github.com/Arjun0606/cabbageseo-sub008/internal/adaptors"
	"github.com/Arjun0606/cabbageseo-sub008/internal/http/handlers"
	"github.com/Arjun0606/cabbageseo-sub008/internal/http/middleware"
	"github.com/Arjun0606/cabbageseo-sub008/internal/service"
)

func initRoutes(_ context.Context, r *Router, cfg *HTTPServerConfig) {
	r.httpRouter.Use(middleware.MetricsMiddleware)
	r.httpRouter.Use(middleware.RequestIDLoggerMiddleware(r.log))

	analyzer := service.NewAnalyzer(r.log)
	client := adaptors.NewWebClient(cfg.FetchTimeout, r.log)

	// Routes
	r.httpRouter.Get("/ready", handlers.NewReadyHandler().Handle)
	r.httpRouter.Post("/analyze", handlers.NewPageScoreHandler(analyzer, r.log).Handle)
	r.httpRouter.Post("/analyze/site", handlers.NewSiteScoreHandler(analyzer, r.log).Handle)
	r.httpRouter.Post("/audit", handlers.NewAuditHandler(analyzer, client, r.log).Handle)
	r.httpRouter.Post("/audit/site", handlers.NewSiteAuditHandler(analyzer, client, cfg.FetchWorkers, r.log).Handle)
}
