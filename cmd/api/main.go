package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/infrastructure/config"
	"github.com/Igaki12/news-network-api/infrastructure/di"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	app, cleanup, err := di.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer cleanup()
	defer app.Logger.Sync()

	server := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      app.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		app.Logger.Info("server starting",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	app.Quizzes.Close()
	if err := server.Shutdown(ctx); err != nil {
		app.Logger.Error("forced shutdown", zap.Error(err))
	}

	app.Logger.Info("server stopped")
}
