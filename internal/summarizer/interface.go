package summarizer

import "context"

// Summarizer turns transcript text into a structured, schema-valid Summary.
// Summarize is total: whatever the model returns or throws, the caller gets a
// Summary it can render, and the session summary file is overwritten to
// match. Summarization is advisory; it must never halt a transcription run.
type Summarizer interface {
	Summarize(ctx context.Context, text string) *Result
}
