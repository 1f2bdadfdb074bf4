package domain

import "google.golang.org/genai"

// RequestPayload represents the core input to the system.
type RequestPayload struct {
	Topic string `json:"topic" validate:"required"`
}

// GenerateContentRequest is the body sent to models/{model}:generateContent.
type GenerateContentRequest struct {
	SystemInstruction *genai.Content   `json:"systemInstruction"`
	Contents          []*genai.Content `json:"contents"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}

// GenerationConfig asks the model for JSON constrained by ResponseSchema.
type GenerationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *genai.Schema `json:"responseSchema"`
}

// ErrorResponse is the body of every non-200 reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
