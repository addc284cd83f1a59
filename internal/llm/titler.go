package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const titleSystemPrompt = "You name website projects. Reply with a title of at most five words for the site described by the user. Reply with the title only, no quotes or punctuation."

// Titler generates short display titles for sessions from their first
// prompt. Titles are cosmetic, callers treat failures as non-fatal.
type Titler struct {
	client *openai.LLM
}

func NewTitler(apiKey, baseURL, model string) (*Titler, error) {
	opts := []openai.Option{openai.WithToken(apiKey), openai.WithModel(model)}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create title client: %w", err)
	}
	return &Titler{client: client}, nil
}

func (t *Titler) Title(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, titleSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := t.client.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("error generating session title: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty title response")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}
