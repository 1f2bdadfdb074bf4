// Package app wires configuration, adapters and handlers into one http.Handler
// shared by the serverless entry point and the local server.
package app

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/simone-trubian/audience-proxy/internal/adapters"
	"github.com/simone-trubian/audience-proxy/internal/config"
	"github.com/simone-trubian/audience-proxy/internal/core"
	"github.com/simone-trubian/audience-proxy/internal/handlers"
)

func New(cfg config.Config, logger *zap.Logger) *echo.Echo {
	var llm core.LLMPort
	if cfg.Gemini.Mock {
		logger.Warn("gemini.mock is set; upstream calls are simulated")
		llm = &adapters.MockLLM{}
	} else {
		llm = adapters.NewLLM(adapters.LLMConfig{
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
		})
	}

	if cfg.Gemini.APIKey == "" {
		// Not fatal: every generate request answers 500 until the key is set.
		logger.Error("GEMINI_API_KEY is not set")
	}

	svc := core.NewAudienceService(llm, cfg.Gemini.APIKey, logger)
	return handlers.NewRouter(handlers.NewHTTPHandler(svc, logger), logger)
}
