package transcriber

import (
	"context"
	"errors"
	"strings"
	"time"

	"radioscribe/internal/audio"
)

// ErrStreamDone is the terminal state of a Stream: the source is exhausted or
// a stop was requested. Once returned, every further Next returns it again.
var ErrStreamDone = errors.New("transcription stream done")

// Stream lazily produces cumulative transcripts, one per processed window.
// Each element is the blank-line-joined concatenation of every chunk
// transcribed so far, because downstream consumers always want everything
// transcribed to date, not a delta. A Stream is single-shot; re-running
// requires a fresh session and transcriber.
type Stream struct {
	t       *implTranscriber
	windows []audio.Window
	next    int
	parts   []string
	done    bool
}

// Next processes one window and returns the cumulative transcript through it.
// The stop signal is polled once here, at the chunk boundary; an in-flight
// window is never interrupted. Any decode or inference failure is fatal to
// the run and surfaces as an error.
func (s *Stream) Next(ctx context.Context) (string, error) {
	if s.done {
		return "", ErrStreamDone
	}

	if s.next > 0 {
		// Yield so a concurrent observer gets a chance to run between chunks.
		time.Sleep(s.t.yieldDelay)
	}

	if s.next >= len(s.windows) {
		s.done = true
		return "", ErrStreamDone
	}

	if s.t.stop.IsStopRequested() {
		s.t.logger.Info(ctx, "Stop requested, ending transcription after %d of %d windows",
			s.next, len(s.windows))
		s.done = true
		return "", ErrStreamDone
	}

	w := s.windows[s.next]

	chunk, err := s.t.source.ExtractWindow(ctx, w)
	if err != nil {
		s.done = true
		return "", err
	}
	s.t.logger.Debug(ctx, "Window %d decoded: %d samples, rms %.4f", w.Index, len(chunk.Samples), chunk.RMS())

	text, err := s.t.backend.Transcribe(ctx, chunk)
	if err != nil {
		s.done = true
		return "", err
	}

	s.parts = append(s.parts, strings.TrimSpace(text))
	cumulative := strings.Join(s.parts, "\n\n")

	if err := s.t.sess.WriteTranscript(cumulative); err != nil {
		s.done = true
		return "", err
	}

	s.next++
	return cumulative, nil
}
