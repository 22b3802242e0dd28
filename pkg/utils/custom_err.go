package utils

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrTripIncomplete = errors.New("trip details incomplete")
	ErrNotFound       = errors.New("record not found")
	ErrDatabaseError  = errors.New("database error")

	ErrAPIKeyMissing        = errors.New("api key missing")
	ErrAPIKeyInvalid        = errors.New("api key rejected by the AI service")
	ErrRateLimited          = errors.New("rate limited by the AI service")
	ErrMalformedAIOutput    = errors.New("malformed AI output")
	ErrGroundingUnsupported = errors.New("grounded mode not supported by this provider")
	ErrPlanInFlight         = errors.New("a generation is already in progress")

	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// RateLimitRetryAfter is the wait the AI service conventionally suggests
// alongside a 429.
const RateLimitRetryAfter = 60 * time.Second
