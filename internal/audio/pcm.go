package audio

import (
	"encoding/binary"
	"fmt"
)

// decodeWAVSamples extracts the data chunk of a 16-bit PCM WAV file and
// normalizes the samples to [-1, 1).
func decodeWAVSamples(data []byte) ([]float32, error) {
	pcm, err := wavDataChunk(data)
	if err != nil {
		return nil, err
	}
	return normalizeS16LE(pcm), nil
}

// wavDataChunk walks the RIFF chunk list and returns the raw bytes of the
// data chunk.
func wavDataChunk(data []byte) ([]byte, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}

	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if body+size > len(data) {
			size = len(data) - body
		}
		if id == "data" {
			return data[body : body+size], nil
		}
		// Chunks are word-aligned.
		off = body + size + (size & 1)
	}

	return nil, fmt.Errorf("no data chunk found")
}

// normalizeS16LE converts 16-bit little-endian PCM to float32 amplitudes.
func normalizeS16LE(pcm []byte) []float32 {
	n := len(pcm) / 2
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(pcm[2*i : 2*i+2]))
		out[i] = float32(s) / 32768.0
	}
	return out
}
