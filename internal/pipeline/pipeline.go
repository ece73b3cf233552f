package pipeline

import (
	"context"
	"errors"
	"fmt"

	"radioscribe/internal/transcriber"
)

// Run pulls the transcription stream to exhaustion. Each cumulative
// transcript is summarized synchronously before the next chunk is processed,
// so the summary for increment i always reflects the full transcript through
// chunk i. Transcription errors are fatal and propagate; summarization never
// fails, it degrades.
func (p *implPipeline) Run(ctx context.Context, handler ResultHandler) error {
	stream, err := p.transcriber.Start(ctx)
	if err != nil {
		return fmt.Errorf("start transcription: %w", err)
	}
	defer func() {
		if err := p.transcriber.Cleanup(); err != nil {
			p.logger.Warn(ctx, "Transcriber cleanup failed: %v", err)
		}
	}()

	increments := 0
	for {
		transcript, err := stream.Next(ctx)
		if errors.Is(err, transcriber.ErrStreamDone) {
			break
		}
		if err != nil {
			return fmt.Errorf("transcribe chunk: %w", err)
		}

		result := p.summarizer.Summarize(ctx, transcript)
		p.logger.Debug(ctx, "Increment %d: %d chars, summary %s", increments, len(transcript), result.Status)

		if handler != nil {
			if err := handler(ctx, Pair{Transcript: transcript, Summary: result}); err != nil {
				return fmt.Errorf("handle increment %d: %w", increments, err)
			}
		}
		increments++
	}

	p.logger.Info(ctx, "Pipeline finished after %d increments", increments)
	return nil
}
