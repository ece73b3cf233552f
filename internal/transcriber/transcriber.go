package transcriber

import (
	"context"
	"fmt"

	"radioscribe/internal/audio"
)

// Start probes the source, fixes the window plan for the whole run and
// returns the stream. The transcript file is cleared up front so a consumer
// tailing it never sees a previous run's text.
func (t *implTranscriber) Start(ctx context.Context) (*Stream, error) {
	if t.started {
		return nil, fmt.Errorf("transcriber already started, create a new session to run again")
	}
	t.started = true

	if err := t.stop.Reset(); err != nil {
		return nil, fmt.Errorf("reset stop signal: %w", err)
	}

	if err := t.sess.WriteTranscript(""); err != nil {
		return nil, fmt.Errorf("clear transcript: %w", err)
	}

	totalMS, err := t.source.DurationMS(ctx)
	if err != nil {
		return nil, fmt.Errorf("probe audio duration: %w", err)
	}

	windows := audio.Windows(totalMS, t.chunkMS)
	t.logger.Info(ctx, "Transcribing %s: %dms of audio in %d windows of %dms (model %s)",
		t.source.Path(), totalMS, len(windows), t.chunkMS, t.model)

	return &Stream{t: t, windows: windows}, nil
}

// Cleanup clears the stop-signal artifact so a subsequent session is not
// born pre-cancelled.
func (t *implTranscriber) Cleanup() error {
	return t.stop.Reset()
}
