package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/simone-trubian/audience-proxy/internal/core/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 60 * time.Second

	// upper bound on how much of a failed upstream reply is kept for the logs
	maxErrorBody = 64 << 10
)

var errInvalidJSON = errors.New("response body is not valid JSON")

type LLMConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// LLM calls the Gemini generateContent REST endpoint and hands back the raw body.
type LLM struct {
	client  *http.Client
	baseURL string
	model   string
}

func NewLLM(config LLMConfig) *LLM {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &LLM{
		client: &http.Client{
			Timeout: config.Timeout, // Long timeout for LLM generation
		},
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		model:   config.Model,
	}
}

func (a *LLM) endpoint(apiKey string) string {
	query := url.Values{"key": {apiKey}}
	return fmt.Sprintf("%s/models/%s:generateContent?%s", a.baseURL, url.PathEscape(a.model), query.Encode())
}

func (a *LLM) GenerateContent(ctx context.Context, apiKey string, payload domain.GenerateContentRequest) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint(apiKey), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", redactURLError(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Err: redactURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response body: %w", err)}
	}
	if !json.Valid(raw) {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(raw), Err: errInvalidJSON}
	}

	return json.RawMessage(raw), nil
}

// redactURLError strips the key query parameter from errors that echo the request URL.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactKey(urlErr.URL)
	}
	return err
}

// RedactKey masks the key query parameter of a raw URL.
func RedactKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		base, _, _ := strings.Cut(rawURL, "?")
		return base
	}
	query := u.Query()
	if query.Has("key") {
		query.Set("key", "REDACTED")
		u.RawQuery = query.Encode()
	}
	return u.String()
}
