package llm

import (
	"context"
	"fmt"
	"log/slog"

	"sitegen-backend/internal/chat"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GenerateRequest carries everything needed for one completion: the
// fixed system instruction, the prior conversation replayed in original
// order, and the assembled prompt for the new turn.
type GenerateRequest struct {
	SystemPrompt string
	History      []chat.Turn
	Prompt       string
}

// StreamResponse yields text fragments as the provider produces them. A
// non-nil error ends the stream; no further fragments follow it.
type StreamResponse func(yield func(string, error) bool)

// Generator is a streaming text-completion service.
type Generator interface {
	Stream(ctx context.Context, req GenerateRequest) StreamResponse
}

// OpenAIGenerator talks to any OpenAI-compatible chat completion
// endpoint. In production the base URL points at Groq.
type OpenAIGenerator struct {
	client openai.Client
	model  string
	temp   float64
}

func NewOpenAIGenerator(apiKey, baseURL, model string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIGenerator{
		client: openai.NewClient(opts...),
		model:  model,
		temp:   0.1,
	}, nil
}

func (g *OpenAIGenerator) Stream(ctx context.Context, req GenerateRequest) StreamResponse {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	for _, turn := range req.History {
		switch turn.Role {
		case chat.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	chatReq := openai.ChatCompletionNewParams{
		Model:       g.model,
		Messages:    messages,
		Temperature: openai.Float(g.temp),
	}

	return func(yield func(string, error) bool) {
		stream := g.client.Chat.Completions.NewStreaming(ctx, chatReq)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			if content := chunk.Choices[0].Delta.Content; content != "" {
				if !yield(content, nil) {
					return
				}
			}
		}

		if err := stream.Err(); err != nil {
			slog.Error("openai error: streaming chat completion failed", "error", err)
			yield("", fmt.Errorf("openai generation failed: %w", err))
		}
	}
}
