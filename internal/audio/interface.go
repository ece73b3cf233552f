package audio

import "context"

// Source is a read-only view over one decodable audio resource. The pipeline
// never mutates the underlying file; it only extracts windows from it.
type Source interface {
	// Path returns the location of the underlying audio resource.
	Path() string
	// DurationMS probes the total duration in milliseconds.
	DurationMS(ctx context.Context) (int, error)
	// ExtractWindow decodes one window to 16kHz mono PCM, returning both a
	// WAV file on disk (for STT backends that take files) and the samples
	// normalized to [-1, 1).
	ExtractWindow(ctx context.Context, w Window) (*Chunk, error)
}

// Window is one fixed-duration, non-overlapping slice of a Source. The last
// window of a source may be shorter than the configured duration.
type Window struct {
	Index   int
	StartMS int
	DurMS   int
}

// Chunk is a decoded window.
type Chunk struct {
	Window  Window
	WAVPath string
	Samples []float32
}

// Windows splits a total duration into contiguous windows of chunkMS each.
// The count is always ceil(totalMS/chunkMS).
func Windows(totalMS, chunkMS int) []Window {
	if totalMS <= 0 || chunkMS <= 0 {
		return nil
	}
	var out []Window
	for start := 0; start < totalMS; start += chunkMS {
		dur := chunkMS
		if start+dur > totalMS {
			dur = totalMS - start
		}
		out = append(out, Window{Index: len(out), StartMS: start, DurMS: dur})
	}
	return out
}
