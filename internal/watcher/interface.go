package watcher

import "context"

// Watcher monitors a directory for newly dropped audio files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one new audio file.
type EventHandler func(ctx context.Context, filePath string) error
