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

	"github.com/simone-trubian/audience-proxy/internal/app"
	"github.com/simone-trubian/audience-proxy/internal/config"
	"github.com/simone-trubian/audience-proxy/internal/logger"
)

func main() {
	// 1. Configuration (env vars, optional yaml)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
	})
	defer zl.Sync()

	// 2. Wiring
	e := app.New(cfg, zl)

	// 3. Start Server
	go func() {
		zl.Info("audience proxy listening", zap.String("port", cfg.Server.Port), zap.String("model", cfg.Gemini.Model))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Gemini.Timeout+5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
