// Package logging sets up the debug log. The TUI owns the terminal, so
// log output always goes to a file, never to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	Level string // debug, info, warn, error; empty disables logging
	File  string // Empty means DefaultPath()
}

// DefaultPath returns ~/.tetris/tetris.log, or a relative file when the
// home directory is unavailable.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tetris.log"
	}
	return filepath.Join(home, ".tetris", "tetris.log")
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// New opens the log file and returns a logger writing to it, plus a close
// function. A disabled configuration returns Discard() and a no-op close.
func New(opts Options) (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	if opts.Level == "" {
		return Discard(), noop, nil
	}

	level, err := log.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return Discard(), noop, fmt.Errorf("logging: %w", err)
	}

	path := opts.File
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), noop, fmt.Errorf("logging: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return Discard(), noop, fmt.Errorf("logging: open %s: %w", path, err)
	}

	return NewWriter(f, level), f.Close, nil
}

// NewWriter returns a logger writing logfmt-style lines to w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
		Formatter:       log.LogfmtFormatter,
	})
}
