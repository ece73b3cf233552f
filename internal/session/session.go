package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Session holds the run-scoped state of one transcription run: its output
// paths and scratch space. A Session is owned by exactly one pipeline
// invocation; a new run gets a new Session. Paths carry a timestamp plus a
// uuid fragment so two sessions can never share an output file.
type Session struct {
	ID             string
	AudioPath      string
	TranscriptPath string
	SummaryPath    string
	ReportPath     string
	TempDir        string
}

// New creates a Session for one run over audioPath, rooted in textDir for
// outputs and tempDir for chunk scratch files.
func New(audioPath, textDir, tempDir string) (*Session, error) {
	stamp := time.Now().Format("20060102_150405")
	id := fmt.Sprintf("%s_%s", stamp, uuid.NewString()[:8])

	if err := os.MkdirAll(textDir, 0755); err != nil {
		return nil, fmt.Errorf("create text dir: %w", err)
	}

	scratch, err := os.MkdirTemp(tempDir, "session-"+id+"-*")
	if err != nil {
		if mkErr := os.MkdirAll(tempDir, 0755); mkErr != nil {
			return nil, fmt.Errorf("create temp dir: %w", mkErr)
		}
		scratch, err = os.MkdirTemp(tempDir, "session-"+id+"-*")
		if err != nil {
			return nil, fmt.Errorf("create session scratch dir: %w", err)
		}
	}

	return &Session{
		ID:             id,
		AudioPath:      audioPath,
		TranscriptPath: filepath.Join(textDir, fmt.Sprintf("transcription_%s.txt", id)),
		SummaryPath:    filepath.Join(textDir, fmt.Sprintf("summary_%s.json", id)),
		ReportPath:     filepath.Join(textDir, fmt.Sprintf("report_%s.docx", id)),
		TempDir:        scratch,
	}, nil
}

// WriteTranscript overwrites the transcript file with the full cumulative
// text, so the persisted file is consistent even if the run is interrupted.
func (s *Session) WriteTranscript(text string) error {
	if err := os.WriteFile(s.TranscriptPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// WriteSummary overwrites the summary file with v as pretty-printed JSON.
// Non-ASCII text is written as-is, not escaped.
func (s *Session) WriteSummary(v interface{}) error {
	f, err := os.Create(s.SummaryPath)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}

// Cleanup removes the session's scratch directory.
func (s *Session) Cleanup() error {
	if s.TempDir == "" {
		return nil
	}
	return os.RemoveAll(s.TempDir)
}
