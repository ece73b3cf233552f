package transcriber

import (
	"context"

	"radioscribe/internal/audio"
)

// Transcriber runs one chunked speech-to-text pass over an audio source.
// Start may be called once per Transcriber; a new run requires a new session
// and a new Transcriber.
type Transcriber interface {
	// Start prepares the run and returns the lazy stream of cumulative
	// transcripts. The stop signal is cleared here so the run is not born
	// pre-cancelled.
	Start(ctx context.Context) (*Stream, error)
	// Cleanup removes the stop-signal artifact left by a cancelled run.
	Cleanup() error
}

// Backend performs speech-to-text inference on one decoded window in
// isolation. No cross-window context is passed; windows stay independent.
type Backend interface {
	Transcribe(ctx context.Context, chunk *audio.Chunk) (string, error)
}
