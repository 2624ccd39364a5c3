// ABOUTME: Entry point for the inference calculator backend service
// ABOUTME: Serves the CPU vs GPU comparison API and Prometheus metrics

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/KimMachineGun/automemlimit"
	_ "go.uber.org/automaxprocs"

	"github.com/markalston/inference-calculator/backend/catalog"
	"github.com/markalston/inference-calculator/backend/config"
	"github.com/markalston/inference-calculator/backend/handlers"
	"github.com/markalston/inference-calculator/backend/logger"
	"github.com/markalston/inference-calculator/backend/observability"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; variables already set win
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("Failed to load .env", "error", err)
		os.Exit(1)
	}

	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	slog.Info("Starting Inference Calculator Backend")

	metrics := observability.NewMetrics()

	source, err := catalog.NewSource(cfg.CatalogSource, cfg.CatalogFile)
	if err != nil {
		return err
	}
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	loader := catalog.NewLoader(source, cacheTTL)
	loader.SetObserver(metrics.ObserveCatalogLoad)
	defer loader.Close()
	slog.Info("Catalog configured", "source", source.Name(), "file", cfg.CatalogFile, "ttl", cacheTTL)

	// Fail fast on a broken catalog rather than on the first request
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := loader.Catalog(ctx)
	if err != nil {
		return err
	}
	metrics.SetCatalogModels(c)
	slog.Info("Catalog loaded", "models", c.Len())
	slog.Info("Pricing assumptions",
		"power_cost_per_kwh", cfg.Pricing.PowerCostPerKWh,
		"amortization_months", cfg.Pricing.AmortizationMonths,
		"market_price_per_token", cfg.Pricing.MarketPricePerToken,
		"reference_model_params", cfg.Pricing.ReferenceModelParams,
	)

	h := handlers.NewHandler(cfg, loader, metrics)
	router, err := newRouter(cfg, h, metrics)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}
