package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTopic      = errors.New("topic is required")
	ErrMissingCredential = errors.New("gemini api key is not configured")
)

// UpstreamError reports a failed call to the generative API.
// Body keeps the raw upstream reply for logging; Error() never includes it.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		if e.StatusCode != 0 {
			return fmt.Sprintf("upstream status %d: %v", e.StatusCode, e.Err)
		}
		return fmt.Sprintf("upstream unreachable: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned status: %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
