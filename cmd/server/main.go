package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rdiego26/muti-user-task-manager-api/internal/app"
	"github.com/rdiego26/muti-user-task-manager-api/internal/config"
	"github.com/rdiego26/muti-user-task-manager-api/internal/logger"
)

// isFatalServeError filters out the ErrServerClosed the listener
// returns during graceful shutdown; only real serve failures abort.
func isFatalServeError(err error) bool {
	return err != nil && !errors.Is(err, http.ErrServerClosed)
}

func main() {
	logger.Init()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", map[string]any{
			"error": err.Error(),
		})
	}

	go func() {
		if err := application.Run(); isFatalServeError(err) {
			logger.Fatal("http server failed", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	logger.Info("session-service started", map[string]any{
		"port":    cfg.AppPort,
		"backend": cfg.SessionBackend,
	})

	<-ctx.Done() // wait for Ctrl+C

	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("graceful shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("session-service stopped cleanly", nil)
}
