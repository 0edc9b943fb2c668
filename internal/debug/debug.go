package debug

import (
	"log/slog"
	"os"
	"sync"

	"github.com/pkg/errors"
)

var (
	mu     sync.Mutex
	logger = slog.New(slog.DiscardHandler)
	closer *os.File
)

// Init points the process-wide logger at the file at path.
// The terminal UI owns stdout, so debug output always goes to a file.
func Init(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrap(err, "opening debug log")
	}
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
	}
	closer = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	return nil
}

// GetLogger returns the process-wide logger. Output is discarded until Init succeeds.
func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Close flushes and closes the debug log.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
		closer = nil
	}
	logger = slog.New(slog.DiscardHandler)
}
