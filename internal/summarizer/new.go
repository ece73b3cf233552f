package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"radioscribe/internal/llm"
	"radioscribe/internal/logger"
	"radioscribe/internal/session"
)

// ConfigurationError reports a generation model that the endpoint does not
// currently serve.
type ConfigurationError struct {
	Model     string
	Available []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("model %s not found, available models: %s",
		e.Model, strings.Join(e.Available, ", "))
}

type implSummarizer struct {
	client llm.Client
	model  string
	sess   *session.Session
	logger logger.Logger
}

// New creates a Summarizer for one session. The configured model is resolved
// against the endpoint's current model list; the list is re-queried rather
// than hard-coded because it is operator-managed.
func New(ctx context.Context, client llm.Client, model string, sess *session.Session, log logger.Logger) (Summarizer, error) {
	available, err := client.ListModels(ctx)
	switch {
	case errors.Is(err, llm.ErrModelListUnavailable):
		log.Warn(ctx, "Backend has no model list, assuming %s is served", model)
	case err != nil:
		return nil, fmt.Errorf("query available models: %w", err)
	default:
		log.Debug(ctx, "Available models: %s", strings.Join(available, ", "))
		found := false
		for _, m := range available {
			if m == model {
				found = true
				break
			}
		}
		if !found {
			return nil, &ConfigurationError{Model: model, Available: available}
		}
	}

	return &implSummarizer{
		client: client,
		model:  model,
		sess:   sess,
		logger: log,
	}, nil
}
