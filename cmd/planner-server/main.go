// cmd/planner-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"trip-planner/internal/app"
	"trip-planner/internal/common/config"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/observability"
	"trip-planner/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting planner server", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"address":     cfg.Server.Address,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	orch, cleanup, err := app.Build(cfg, log, obs)
	if err != nil {
		log.WithError(err).Error("failed to build pipeline", nil)
		os.Exit(1)
	}
	defer cleanup()

	srv, err := server.New(orch, log)
	if err != nil {
		log.WithError(err).Error("failed to build server", nil)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server error", nil)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			config.GetDuration(cfg.Server.ShutdownTimeout))
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("graceful shutdown incomplete", nil)
		}
	}

	log.Info("planner server stopped", nil)
}
