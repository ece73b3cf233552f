package pipeline

import (
	"radioscribe/internal/logger"
	"radioscribe/internal/summarizer"
	"radioscribe/internal/transcriber"
)

type implPipeline struct {
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger
}

// New ties a transcriber and a summarizer together for one session.
func New(t transcriber.Transcriber, s summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		transcriber: t,
		summarizer:  s,
		logger:      log,
	}
}
