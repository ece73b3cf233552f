package transcriber

import (
	"time"

	"radioscribe/internal/audio"
	"radioscribe/internal/logger"
	"radioscribe/internal/session"
	"radioscribe/internal/stopsignal"
)

// Matches the original pipeline's inter-chunk pause: long enough for a
// concurrent observer (UI, monitor) to run, short enough to be invisible
// next to inference time.
const defaultYieldDelay = 100 * time.Millisecond

type implTranscriber struct {
	model      string
	source     audio.Source
	sess       *session.Session
	stop       stopsignal.Coordinator
	backend    Backend
	chunkMS    int
	yieldDelay time.Duration
	logger     logger.Logger
	started    bool
}

// New creates a Transcriber for one session. The model identifier is
// validated against the closed whisper size-class set; an invalid identifier
// fails fast with a ConfigurationError naming the valid set.
func New(model string, source audio.Source, sess *session.Session, stop stopsignal.Coordinator, backend Backend, chunkMS int, log logger.Logger) (Transcriber, error) {
	model = NormalizeModel(model)
	if !isValidModel(model) {
		return nil, &ConfigurationError{Model: model, Valid: ValidModels()}
	}

	if chunkMS <= 0 {
		chunkMS = 30000
	}

	return &implTranscriber{
		model:      model,
		source:     source,
		sess:       sess,
		stop:       stop,
		backend:    backend,
		chunkMS:    chunkMS,
		yieldDelay: defaultYieldDelay,
		logger:     log,
	}, nil
}
