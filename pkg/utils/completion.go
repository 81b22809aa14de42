package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// CompletionClientInterface abstracts a single chat-completion call. The
// service asks for strict JSON-object output; no retries, no streaming.
type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GroqCompletionClient talks to Groq's OpenAI-compatible endpoint.
type GroqCompletionClient struct {
	client *openai.Client
	model  string
}

func NewGroqCompletionClient(apiKey, model string) *GroqCompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqCompletionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *GroqCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

// NewCompletionClient builds a client for the configured provider.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "groq", "openai":
		log.Info().Str("model", model).Msg("using Groq completion client")
		return NewGroqCompletionClient(apiKey, model), nil
	case "gemini":
		log.Info().Str("model", model).Msg("using Gemini completion client")
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", provider)
	}
}
