package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/simone-trubian/audience-proxy/internal/app"
	"github.com/simone-trubian/audience-proxy/internal/config"
)

func TestNew_MockUpstream(t *testing.T) {
	cfg := config.Config{
		Gemini: config.GeminiConfig{APIKey: "local", Mock: true},
	}
	h := app.New(cfg, zap.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"topic":"cooking classes"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cooking classes")
}

func TestNew_MissingKeyStillServes(t *testing.T) {
	cfg := config.Config{
		Gemini: config.GeminiConfig{Mock: true},
	}
	h := app.New(cfg, zap.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"topic":"線上英語課程"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}
