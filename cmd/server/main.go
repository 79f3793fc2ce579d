package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/catalog"
	"github.com/SanderGeraedts/InkoopPlanner/internal/config"
	"github.com/SanderGeraedts/InkoopPlanner/internal/logger"
	"github.com/SanderGeraedts/InkoopPlanner/internal/metrics"
	"github.com/SanderGeraedts/InkoopPlanner/internal/router"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/SanderGeraedts/InkoopPlanner/internal/store"
	"github.com/SanderGeraedts/InkoopPlanner/internal/telemetry"
	"github.com/SanderGeraedts/InkoopPlanner/internal/ws"
	"go.uber.org/zap"
)

const serviceName = "inkoopplanner"

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel, serviceName)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck
	zap.ReplaceGlobals(zl)

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Tracing, cfg.Env)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			zl.Warn("flush traces", zap.Error(err))
		}
	}()

	st, closeStore, err := store.Open(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer closeStore()

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	m := metrics.New(serviceName)
	if cfg.SeedOnStart {
		n, err := catalog.NewSeeder(st, cat, zl).Seed(ctx)
		if err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		m.ProductsSeeded(n)
	}

	svc := service.NewPlannerService(st, cat.References, m)

	hub := ws.NewHub(zl.Named("ws"))
	go hub.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           telemetry.Middleware(serviceName)(router.New(cfg, zl, svc, hub, m)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("starting server",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
			zap.String("store", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
