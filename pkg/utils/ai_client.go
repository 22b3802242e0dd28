package utils

import (
	"context"
	"fmt"
	"strings"

	"globehopper/internal/models/db_models"
)

type GenerationMode string

const (
	// ModeStrict asks the model for JSON conforming to the fixed shape and
	// forbids tool use.
	ModeStrict GenerationMode = "strict"
	// ModeGrounded lets the model consult live web search; the service does
	// not allow combining that with enforced JSON output, so framing is
	// looser and extraction more defensive.
	ModeGrounded GenerationMode = "grounded"
)

// GenerationOutput is the raw result of one model call: response text plus,
// in grounded mode, the citation records the service attached.
type GenerationOutput struct {
	Text    string
	Sources []db_models.Source
}

// PlannerClientInterface issues exactly one request per Generate call. No
// internal retries, no backoff; the user re-triggers on failure.
type PlannerClientInterface interface {
	Generate(ctx context.Context, prompt string, mode GenerationMode, apiKey string) (*GenerationOutput, error)
}

// NewPlannerClient creates a planner client for the configured provider.
func NewPlannerClient(provider, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini", "":
		return NewGeminiPlannerClient(model), nil
	case "openai":
		return NewOpenAIPlannerClient(model), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'gemini' or 'openai'", provider)
	}
}

// IsPlaceholderKey reports whether a credential is absent or still the stock
// sample value. Such keys must never reach the network.
func IsPlaceholderKey(key string) bool {
	key = strings.TrimSpace(key)
	return key == "" || strings.Contains(key, "your_gemini")
}
