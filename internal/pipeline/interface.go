package pipeline

import (
	"context"

	"radioscribe/internal/summarizer"
)

// Pair is one synchronized pipeline increment: the cumulative transcript
// through chunk i and the summary computed from exactly that text.
type Pair struct {
	Transcript string
	Summary    *summarizer.Result
}

// ResultHandler receives each Pair as it is produced.
type ResultHandler func(ctx context.Context, p Pair) error

// Pipeline drives one transcription run and summarizes every increment.
type Pipeline interface {
	Run(ctx context.Context, handler ResultHandler) error
}
