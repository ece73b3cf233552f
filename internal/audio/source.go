package audio

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"radioscribe/pkg/executor"
)

// Whisper models expect 16kHz mono input.
const sampleRate = 16000

type implSource struct {
	path    string
	tempDir string
	exec    executor.Executor
}

// NewSource creates a Source over the audio file at path. Extracted window
// WAVs are written into tempDir.
func NewSource(path, tempDir string, exec executor.Executor) Source {
	return &implSource{path: path, tempDir: tempDir, exec: exec}
}

func (s *implSource) Path() string {
	return s.path
}

// DurationMS probes the container duration with ffprobe.
func (s *implSource) DurationMS(ctx context.Context) (int, error) {
	out, err := s.exec.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		s.path,
	)
	if err != nil {
		return 0, fmt.Errorf("probe duration: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}

	return int(math.Round(seconds * 1000)), nil
}

// ExtractWindow decodes one window with ffmpeg to a 16kHz mono 16-bit WAV and
// loads the normalized samples.
func (s *implSource) ExtractWindow(ctx context.Context, w Window) (*Chunk, error) {
	wavPath := filepath.Join(s.tempDir, fmt.Sprintf("chunk_%04d.wav", w.Index))

	args := []string{
		"-ss", formatSeconds(w.StartMS),
		"-t", formatSeconds(w.DurMS),
		"-i", s.path,
		"-ac", "1",
		"-ar", strconv.Itoa(sampleRate),
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := s.exec.Execute(ctx, "ffmpeg", args...); err != nil {
		return nil, fmt.Errorf("ffmpeg decode window %d: %w", w.Index, err)
	}

	data, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("read window %d wav: %w", w.Index, err)
	}

	samples, err := decodeWAVSamples(data)
	if err != nil {
		return nil, fmt.Errorf("decode window %d samples: %w", w.Index, err)
	}

	return &Chunk{Window: w, WAVPath: wavPath, Samples: samples}, nil
}

// RMS is the root-mean-square amplitude of the chunk, logged for visibility
// into near-silent windows.
func (c *Chunk) RMS() float64 {
	if len(c.Samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range c.Samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(c.Samples)))
}

func formatSeconds(ms int) string {
	return strconv.FormatFloat(float64(ms)/1000.0, 'f', 3, 64)
}
