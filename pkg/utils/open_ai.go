package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlannerClient is the alternate provider for deployments without a
// Gemini key. It has no web-grounding capability.
type OpenAIPlannerClient struct {
	model string
}

func NewOpenAIPlannerClient(model string) *OpenAIPlannerClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlannerClient{model: model}
}

func (c *OpenAIPlannerClient) Generate(ctx context.Context, prompt string, mode GenerationMode, apiKey string) (*GenerationOutput, error) {
	if IsPlaceholderKey(apiKey) {
		return nil, ErrAPIKeyMissing
	}
	if mode == ModeGrounded {
		return nil, ErrGroundingUnsupported
	}

	client := openai.NewClient(strings.TrimSpace(apiKey))
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: plannerSystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedAIOutput)
	}

	return &GenerationOutput{Text: resp.Choices[0].Message.Content}, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrAPIKeyInvalid, apiErr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
		}
	}
	return fmt.Errorf("openai: %w", err)
}
