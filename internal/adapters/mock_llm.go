package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/simone-trubian/audience-proxy/internal/core/domain"
)

// MockLLM simulates Gemini without the bill
type MockLLM struct {
	Latency time.Duration
}

type mockAudience struct {
	Behavior  string   `json:"behavior"`
	Audiences []string `json:"audiences"`
}

func (m *MockLLM) GenerateContent(ctx context.Context, apiKey string, payload domain.GenerateContentRequest) (json.RawMessage, error) {
	// Simulate generation latency
	select {
	case <-ctx.Done():
		return nil, &domain.UpstreamError{Err: ctx.Err()}
	case <-time.After(m.Latency):
	}

	query := ""
	if len(payload.Contents) > 0 && len(payload.Contents[0].Parts) > 0 {
		query = payload.Contents[0].Parts[0].Text
	}

	audiences := make([]string, 0, 8)
	for i := 1; i <= 8; i++ {
		audiences = append(audiences, fmt.Sprintf("mock audience %d", i))
	}
	return json.Marshal([]mockAudience{
		{Behavior: "mock behavior for: " + query, Audiences: audiences},
	})
}
