package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"radioscribe/internal/audio"
	"radioscribe/pkg/executor"
)

type localBackend struct {
	binaryPath string
	modelPath  string
	language   string
	threads    int
	exec       executor.Executor
}

// NewLocalBackend runs whisper.cpp on each window. The binary and the ggml
// model file are resolved up front; a missing file is a ModelLoadError
// before any chunk is processed.
func NewLocalBackend(binaryPath, modelsDir, model, language string, threads int, exec executor.Executor) (Backend, error) {
	model = NormalizeModel(model)
	modelPath := filepath.Join(modelsDir, fmt.Sprintf("ggml-%s.bin", model))

	if _, err := os.Stat(binaryPath); err != nil {
		return nil, &ModelLoadError{Model: model, Err: fmt.Errorf("whisper binary %s: %w", binaryPath, err)}
	}
	if _, err := os.Stat(modelPath); err != nil {
		return nil, &ModelLoadError{Model: model, Err: fmt.Errorf("model file %s: %w", modelPath, err)}
	}

	if threads <= 0 {
		threads = 4
	}

	return &localBackend{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
		threads:    threads,
		exec:       exec,
	}, nil
}

func (b *localBackend) Transcribe(ctx context.Context, chunk *audio.Chunk) (string, error) {
	outputPrefix := strings.TrimSuffix(chunk.WAVPath, filepath.Ext(chunk.WAVPath))

	args := []string{
		"-m", b.modelPath,
		"-f", chunk.WAVPath,
		"-l", b.language,
		"-t", strconv.Itoa(b.threads),
		"-otxt",
		"--output-file", outputPrefix,
	}

	if _, err := b.exec.Execute(ctx, b.binaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe window %d: %w", chunk.Window.Index, err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output %s: %w", txtPath, err)
	}
	defer os.Remove(txtPath)

	return strings.TrimSpace(string(data)), nil
}
