package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"radioscribe/internal/audio"
	"radioscribe/internal/logger"
	"radioscribe/internal/session"
	"radioscribe/internal/stopsignal"
	"radioscribe/internal/summarizer"
	"radioscribe/internal/transcriber"
)

type stubSource struct {
	durationMS int
}

func (s *stubSource) Path() string { return "tower.wav" }

func (s *stubSource) DurationMS(ctx context.Context) (int, error) { return s.durationMS, nil }

func (s *stubSource) ExtractWindow(ctx context.Context, w audio.Window) (*audio.Chunk, error) {
	return &audio.Chunk{Window: w}, nil
}

type stubBackend struct{}

func (stubBackend) Transcribe(ctx context.Context, chunk *audio.Chunk) (string, error) {
	return fmt.Sprintf("window %d", chunk.Window.Index), nil
}

type recordingSummarizer struct {
	inputs []string
}

func (r *recordingSummarizer) Summarize(ctx context.Context, text string) *summarizer.Result {
	r.inputs = append(r.inputs, text)
	return &summarizer.Result{
		Summary: &summarizer.Summary{
			Title:          fmt.Sprintf("summary %d", len(r.inputs)),
			Tldr:           "tldr",
			Communications: []summarizer.Communication{},
		},
		Status: summarizer.StatusOK,
	}
}

func newTestPipeline(t *testing.T, durationMS int) (Pipeline, *recordingSummarizer, stopsignal.Coordinator) {
	t.Helper()
	root := t.TempDir()

	sess, err := session.New("tower.wav", filepath.Join(root, "text"), filepath.Join(root, "temp"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sess.Cleanup() })

	stop, err := stopsignal.New(filepath.Join(root, "text"))
	if err != nil {
		t.Fatal(err)
	}

	log := logger.NewWithWriter("error", io.Discard)
	tr, err := transcriber.New("base", &stubSource{durationMS: durationMS}, sess, stop, stubBackend{}, 30000, log)
	if err != nil {
		t.Fatal(err)
	}

	sum := &recordingSummarizer{}
	return New(tr, sum, log), sum, stop
}

func TestRunPairsEveryIncrement(t *testing.T) {
	p, sum, _ := newTestPipeline(t, 65000)

	var pairs []Pair
	err := p.Run(context.Background(), func(ctx context.Context, pair Pair) error {
		pairs = append(pairs, pair)
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(pairs) != 3 {
		t.Fatalf("pairs = %d, want 3", len(pairs))
	}

	// The summarizer saw exactly the transcripts that were handed out, in
	// order, each one the cumulative text through its chunk.
	for i, pair := range pairs {
		if sum.inputs[i] != pair.Transcript {
			t.Errorf("summary %d computed from %q, paired with %q", i, sum.inputs[i], pair.Transcript)
		}
		if i > 0 && !strings.HasPrefix(pair.Transcript, pairs[i-1].Transcript) {
			t.Errorf("transcript %d does not extend transcript %d", i, i-1)
		}
		if pair.Summary == nil || pair.Summary.Summary.Title == "" {
			t.Errorf("pair %d missing summary", i)
		}
	}
}

func TestRunStopsWithStream(t *testing.T) {
	p, sum, stop := newTestPipeline(t, 65000)

	count := 0
	err := p.Run(context.Background(), func(ctx context.Context, pair Pair) error {
		count++
		if count == 1 {
			if err := stop.RequestStop(); err != nil {
				t.Fatal(err)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Stop after the first increment: no further summarization happens
	// because no further transcripts are yielded.
	if count != 1 {
		t.Errorf("handler called %d times, want 1", count)
	}
	if len(sum.inputs) != 1 {
		t.Errorf("summarizer called %d times, want 1", len(sum.inputs))
	}

	// Cleanup ran: the next session is not born pre-cancelled.
	if stop.IsStopRequested() {
		t.Error("stop marker survived Run")
	}
}

func TestRunPropagatesHandlerError(t *testing.T) {
	p, _, _ := newTestPipeline(t, 30000)

	wantErr := errors.New("display broke")
	err := p.Run(context.Background(), func(ctx context.Context, pair Pair) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want handler error", err)
	}
}

func TestRunWithNilHandler(t *testing.T) {
	p, sum, _ := newTestPipeline(t, 30000)

	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(sum.inputs) != 1 {
		t.Errorf("summarizer called %d times, want 1", len(sum.inputs))
	}
}
