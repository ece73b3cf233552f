package transcriber

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"radioscribe/internal/audio"
)

type remoteBackend struct {
	cli   *openai.Client
	model string
}

// NewRemoteBackend transcribes windows through an OpenAI-compatible audio
// transcription endpoint. The per-window WAV produced by the decoder is
// uploaded as-is.
func NewRemoteBackend(baseURL, apiKey string) Backend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &remoteBackend{
		cli:   openai.NewClientWithConfig(cfg),
		model: openai.Whisper1,
	}
}

func (b *remoteBackend) Transcribe(ctx context.Context, chunk *audio.Chunk) (string, error) {
	resp, err := b.cli.CreateTranscription(ctx, openai.AudioRequest{
		Model:    b.model,
		FilePath: chunk.WAVPath,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe window %d: %w", chunk.Window.Index, err)
	}
	return strings.TrimSpace(resp.Text), nil
}
