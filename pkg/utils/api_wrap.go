package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps service-level sentinel errors onto HTTP statuses.
// A failed generation never mutates stored itinerary state, so everything
// here is reported as recoverable.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrTripIncomplete):
		RespondError(c, http.StatusBadRequest, "Please fill in dates and at least one destination")
	case errors.Is(err, ErrGroundingUnsupported):
		RespondError(c, http.StatusBadRequest, "Grounded mode is only available with the Gemini provider")
	case errors.Is(err, ErrAPIKeyMissing):
		RespondError(c, http.StatusUnauthorized, "No API key configured. Enter a key or set it in the environment")
	case errors.Is(err, ErrAPIKeyInvalid):
		RespondError(c, http.StatusUnauthorized, "The API key was rejected. Please enter a valid key")
	case errors.Is(err, ErrPlanInFlight):
		RespondError(c, http.StatusConflict, "A generation is already running, wait for it to finish")
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, APIResponse{
			Status:  "error",
			Code:    http.StatusTooManyRequests,
			Message: "The AI service is rate limiting requests. Please wait about a minute and retry",
			TraceID: traceIDFrom(c),
			Data:    gin.H{"retry_after_seconds": int(RateLimitRetryAfter.Seconds())},
		})
	case errors.Is(err, ErrMalformedAIOutput):
		RespondError(c, http.StatusBadGateway, "The AI returned an unusable plan. Try again")
	case errors.Is(err, ErrRateUnavailable):
		RespondError(c, http.StatusBadGateway, "Exchange rate lookup failed")
	case errors.Is(err, ErrDatabaseError):
		log.WithError(err).Error("database error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.WithError(err).Error("unhandled service error")
		RespondError(c, http.StatusBadGateway, err.Error())
	}
}
