// ABOUTME: HTTP router assembly for the backend service
// ABOUTME: Registers the route table with per-route middleware and rate limit tiers

package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/markalston/inference-calculator/backend/config"
	"github.com/markalston/inference-calculator/backend/handlers"
	"github.com/markalston/inference-calculator/backend/middleware"
	"github.com/markalston/inference-calculator/backend/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter builds the full handler stack: gzip and CORS around the mux,
// and per route logging, instrumentation, panic recovery and rate limiting.
func newRouter(cfg *config.Config, h *handlers.Handler, metrics *observability.Metrics) (http.Handler, error) {
	limiters := map[string]*middleware.RateLimiter{}
	if cfg.RateLimitEnabled {
		onReject := func(tier string) {
			metrics.RateLimitedTotal.WithLabelValues(tier).Inc()
		}
		limiters[handlers.TierDefault] = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute).Observe(handlers.TierDefault, onReject)
		limiters[handlers.TierCompute] = middleware.NewRateLimiter(cfg.RateLimitCompute, time.Minute).Observe(handlers.TierCompute, onReject)
		slog.Info("Rate limiting enabled", "default", cfg.RateLimitDefault, "compute", cfg.RateLimitCompute)
	} else {
		slog.Warn("Rate limiting disabled")
	}

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.Instrument(metrics, route.Path),
			middleware.Recover,
			middleware.RateLimit(limiters[route.Tier], middleware.ClientIP),
		))
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	if len(cfg.CORSAllowedOrigins) == 0 {
		slog.Info("CORS disabled, no allowed origins configured")
	} else {
		slog.Info("CORS enabled", "origins", cfg.CORSAllowedOrigins)
	}
	withCORS := middleware.CORS(cfg.CORSAllowedOrigins)(mux.ServeHTTP)

	return middleware.Compress(withCORS)
}
