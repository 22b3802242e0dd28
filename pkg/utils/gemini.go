package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"globehopper/internal/models/db_models"
	"google.golang.org/genai"
)

const plannerSystemInstruction = "You are an expert travel planner. You provide high-quality, practical itineraries. Output ONLY valid JSON."

// GeminiPlannerClient generates itineraries with Google's Gemini models.
type GeminiPlannerClient struct {
	model string
}

func NewGeminiPlannerClient(model string) *GeminiPlannerClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiPlannerClient{model: model}
}

// Generate issues a single generation request. The client is constructed per
// call because the credential can change at runtime (interactive key entry).
func (c *GeminiPlannerClient) Generate(ctx context.Context, prompt string, mode GenerationMode, apiKey string) (*GenerationOutput, error) {
	if IsPlaceholderKey(apiKey) {
		return nil, ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  strings.TrimSpace(apiKey),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.7),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: plannerSystemInstruction}}},
	}

	// Search grounding and enforced JSON output are mutually exclusive
	// capabilities, so the mode picks exactly one.
	switch mode {
	case ModeGrounded:
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	default:
		config.ResponseMIMEType = "application/json"
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedAIOutput)
	}

	out := &GenerationOutput{Text: text}
	if mode == ModeGrounded {
		out.Sources = groundingSources(resp)
	}
	return out, nil
}

// groundingSources passes the response's grounding chunks through as
// {title, uri} records, in order and unchanged. A chunk without a title
// falls back to its URI so the pair is always populated.
func groundingSources(resp *genai.GenerateContentResponse) []db_models.Source {
	sources := []db_models.Source{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = chunk.Web.URI
		}
		sources = append(sources, db_models.Source{Title: title, URI: chunk.Web.URI})
	}
	return sources
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrAPIKeyInvalid, apiErr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		}
	}
	// The service reports a malformed key as 400 with this marker rather
	// than a 401.
	if strings.Contains(err.Error(), "API_KEY_INVALID") || strings.Contains(err.Error(), "API key not valid") {
		return fmt.Errorf("%w: %v", ErrAPIKeyInvalid, err)
	}
	return fmt.Errorf("gemini: %w", err)
}
