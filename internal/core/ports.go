package core

import (
	"context"
	"encoding/json"

	"github.com/simone-trubian/audience-proxy/internal/core/domain"
)

// --- Ports (Interfaces) ---

// LLMPort defines the contract for the upstream generative API.
// It returns the upstream JSON body untouched.
type LLMPort interface {
	GenerateContent(ctx context.Context, apiKey string, req domain.GenerateContentRequest) (json.RawMessage, error)
}

// AudienceServicePort defines the main entry point for the business logic.
type AudienceServicePort interface {
	Generate(ctx context.Context, payload domain.RequestPayload) (json.RawMessage, error)
}
