package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/simone-trubian/audience-proxy/internal/core/domain"
)

type AudienceService struct {
	llm      LLMPort
	apiKey   string
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAudienceService wires the upstream port with the credential it must present.
// An empty apiKey is accepted here and rejected per request.
func NewAudienceService(llm LLMPort, apiKey string, logger *zap.Logger) *AudienceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudienceService{
		llm:      llm,
		apiKey:   apiKey,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *AudienceService) Generate(ctx context.Context, payload domain.RequestPayload) (json.RawMessage, error) {
	// 1. Input validation
	if err := s.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingTopic, err)
	}

	// 2. Credential
	if s.apiKey == "" {
		s.logger.Error("GEMINI_API_KEY is not set; refusing to call upstream")
		return nil, domain.ErrMissingCredential
	}

	// 3. Upstream call, exactly once
	response, err := s.llm.GenerateContent(ctx, s.apiKey, BuildRequest(payload.Topic))
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			fields = append(fields,
				zap.Int("upstream.status", upstreamErr.StatusCode),
				zap.String("upstream.body", upstreamErr.Body),
			)
		}
		s.logger.Error("gemini request failed", fields...)
		return nil, fmt.Errorf("provider error: %w", err)
	}

	return response, nil
}
