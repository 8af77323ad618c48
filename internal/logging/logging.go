// Package logging builds roster's zerolog logger and the audit sink for bulk
// viewed/unviewed actions.
//
// The terminal belongs to the TUI, so logs normally go to a file:
//
//	log, err := logging.New().FromPath(cfg.LogPath).WithLevel("info").Make()
//	defer log.Close()
//	log.Logger.Info().Msg("starting")
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	filePermission = 0o664
	dirPermission  = 0o755
)

// Builder collects the logger options before Make opens anything.
type Builder struct {
	writer io.Writer
	path   string
	level  string
}

// Log is a configured logger plus the file it owns, if any.
type Log struct {
	Logger zerolog.Logger
	file   *os.File
}

// New starts a builder. Without a path or writer the logger discards output.
func New() *Builder {
	return &Builder{}
}

// FromPath appends to the file at path, creating it and its directory.
func (b *Builder) FromPath(path string) *Builder {
	b.path = strings.TrimSpace(path)
	return b
}

// FromWriter writes to w. A path, when also set, takes precedence.
func (b *Builder) FromWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the minimum level by zerolog name. Empty means info.
func (b *Builder) WithLevel(level string) *Builder {
	b.level = strings.TrimSpace(level)
	return b
}

// Make opens the destination and builds the logger.
func (b *Builder) Make() (*Log, error) {
	level := zerolog.InfoLevel
	if b.level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(b.level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	out := &Log{}
	writer := b.writer
	if writer == nil {
		writer = io.Discard
	}
	if b.path != "" {
		if err := os.MkdirAll(filepath.Dir(b.path), dirPermission); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermission)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out.file = file
		writer = zerolog.SyncWriter(file)
	}

	out.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return out, nil
}

// Path returns the log file path, or empty when logging to a writer.
func (l *Log) Path() string {
	if l == nil || l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close releases the log file. It is safe to call on a writer-backed Log.
func (l *Log) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Nop returns a logger that drops everything.
func Nop() *Log {
	return &Log{Logger: zerolog.Nop()}
}
