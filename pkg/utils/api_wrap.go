package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the wire shape for every non-200 reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Raw     string `json:"raw,omitempty"`
	Details string `json:"details,omitempty"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps pipeline errors onto the HTTP contract. Upstream
// model failures report as 502 so callers can tell them from internal faults;
// anything unrecognized becomes a generic 500, with details outside production.
func HandleServiceError(c *gin.Context, err error, production bool) {
	traceID, _ := c.Get("trace_id")

	var upstream *UpstreamError
	raw := ""
	if errors.As(err, &upstream) {
		raw = upstream.Raw
	}

	switch {
	case errors.Is(err, ErrEmptyCompletion):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Empty response from model"})
	case errors.Is(err, ErrInvalidModelJSON):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Invalid JSON from model", Raw: raw})
	case errors.Is(err, ErrNoOptions):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Model did not return options", Raw: raw})
	case errors.Is(err, ErrCompletionFailed):
		log.Error().Err(err).Interface("trace_id", traceID).Msg("completion call failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Completion request failed"})
	default:
		log.Error().Err(err).Interface("trace_id", traceID).Msg("lure request failed")
		resp := ErrorResponse{Error: "Lure request failed"}
		if !production {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
