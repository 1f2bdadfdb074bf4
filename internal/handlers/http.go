package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/simone-trubian/audience-proxy/internal/core"
	"github.com/simone-trubian/audience-proxy/internal/core/domain"
)

// Client-visible error messages.
const (
	MsgMissingTopic      = "Missing required field: topic"
	MsgMissingCredential = "Server configuration error: API key is not configured"
	MsgInternal          = "Failed to generate audiences"
)

type HTTPHandler struct {
	service core.AudienceServicePort
	logger  *zap.Logger
}

func NewHTTPHandler(s core.AudienceServicePort, logger *zap.Logger) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{service: s, logger: logger}
}

// HandleGenerate is registered for every method so that it, not the router,
// answers non-POST requests.
func (h *HTTPHandler) HandleGenerate(c echo.Context) error {
	r := c.Request()
	if r.Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, domain.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
	}

	var payload domain.RequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// An unreadable body has no topic; validation below reports it.
		h.logger.Debug("request body is not a JSON object", zap.Error(err))
		payload = domain.RequestPayload{}
	}

	// Context propagation is automatic here
	response, err := h.service.Generate(r.Context(), payload)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSONBlob(http.StatusOK, response)
}

func (h *HTTPHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingTopic):
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: MsgMissingTopic})
	case errors.Is(err, domain.ErrMissingCredential):
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: MsgMissingCredential})
	default:
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: MsgInternal, Details: err.Error()})
	}
}

// HandleHealth reports liveness.
func (h *HTTPHandler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
