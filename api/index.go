package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/simone-trubian/audience-proxy/internal/app"
	"github.com/simone-trubian/audience-proxy/internal/config"
	"github.com/simone-trubian/audience-proxy/internal/logger"
)

var defaultHandler http.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		// Keep serving: without a credential every request answers 500 and the cause is logged.
		zap.NewExample().Error("config load failed", zap.Error(err))
		cfg = config.Config{}
	}

	log := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
	})
	defaultHandler = app.New(cfg, log)
}

// Handler is the entry point for Vercel's Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	defaultHandler.ServeHTTP(w, r)
}
