// Package logging builds the charmbracelet loggers shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to path. An empty path discards output,
// since interactive commands own the terminal. The returned closer must
// be called when the logger is no longer needed.
func New(path, level, prefix string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: parse level %q: %w", level, err)
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
		}
		w, closer = f, f
	}

	return newLogger(w, lvl, prefix), closer, nil
}

// Stderr returns a timestamped logger on stderr, used by the SSH server.
func Stderr(level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: parse level %q: %w", level, err)
	}
	return newLogger(os.Stderr, lvl, prefix), nil
}

// Discard returns a logger that writes nowhere, used by the TUI commands
// when no --log-file is given.
func Discard() *log.Logger {
	return newLogger(io.Discard, log.FatalLevel, "")
}

func newLogger(w io.Writer, lvl log.Level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
