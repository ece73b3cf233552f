package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiClient struct {
	apiKeys    []string
	currentKey int
}

// NewGemini creates a Client backed by the Gemini API, rotating through the
// supplied API keys on quota errors.
func NewGemini(apiKeys []string) Client {
	return &geminiClient{apiKeys: apiKeys}
}

// ListModels is unsupported: Gemini serves a fixed catalogue rather than an
// operator-managed one, so there is nothing meaningful to re-query.
func (c *geminiClient) ListModels(ctx context.Context) ([]string, error) {
	return nil, ErrModelListUnavailable
}

func (c *geminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	attempts := len(c.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}
	var lastErr error

	for range attempts {
		key := c.apiKeys[c.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				lastErr = err
				c.rotateKey()
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *geminiClient) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
