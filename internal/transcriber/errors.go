package transcriber

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a model identifier outside the accepted set.
// It is fatal at construction time; no partial session is created.
type ConfigurationError struct {
	Model string
	Valid []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown whisper model %q, valid models: %s",
		e.Model, strings.Join(e.Valid, ", "))
}

// ModelLoadError reports a model that is in the accepted set but cannot be
// loaded. It is fatal to the session, before any chunk is processed.
type ModelLoadError struct {
	Model string
	Err   error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("load whisper model %q: %v", e.Model, e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}
