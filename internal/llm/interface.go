package llm

import (
	"context"
	"errors"
)

// ErrModelListUnavailable is returned by ListModels when the backend has no
// operator-managed model catalogue to query (e.g. Gemini).
var ErrModelListUnavailable = errors.New("model list not available for this backend")

// Client is a single-shot text generation endpoint.
type Client interface {
	// ListModels returns the identifiers the endpoint currently serves.
	ListModels(ctx context.Context) ([]string, error)
	// Generate sends one prompt to model and returns the full response text,
	// non-streaming.
	Generate(ctx context.Context, model, prompt string) (string, error)
}
