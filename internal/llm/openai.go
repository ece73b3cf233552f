package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type openAIClient struct {
	cli *openai.Client
}

// NewOpenAI creates a Client for any OpenAI-compatible endpoint. Pointing
// baseURL at Ollama's /v1 gives access to whatever models the operator has
// pulled there.
func NewOpenAI(baseURL, apiKey string) Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIClient{cli: openai.NewClientWithConfig(cfg)}
}

func (c *openAIClient) ListModels(ctx context.Context) ([]string, error) {
	resp, err := c.cli.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	models := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, m.ID)
	}
	return models, nil
}

func (c *openAIClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", model)
	}
	return resp.Choices[0].Message.Content, nil
}
