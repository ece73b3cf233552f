package stopsignal

import (
	"fmt"
	"os"
	"path/filepath"
)

const markerName = "stop_signal.txt"

type fileCoordinator struct {
	path string
}

// New creates a Coordinator backed by a marker file inside dir. Any process
// that can see dir can request or observe a stop.
func New(dir string) (Coordinator, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create signal dir: %w", err)
	}
	return &fileCoordinator{path: filepath.Join(dir, markerName)}, nil
}

func (c *fileCoordinator) RequestStop() error {
	if err := os.WriteFile(c.path, []byte("stop"), 0644); err != nil {
		return fmt.Errorf("write stop marker: %w", err)
	}
	return nil
}

func (c *fileCoordinator) IsStopRequested() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

func (c *fileCoordinator) Reset() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stop marker: %w", err)
	}
	return nil
}
