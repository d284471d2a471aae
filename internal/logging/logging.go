// Package logging builds the zerolog logger shared by commands and screens.
//
// The interactive UI owns the terminal, so by default log lines go to a file
// instead of stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blackwell-systems/reelctl/internal/config"
	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level; unknown names mean info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New configures a logger from cfg. The returned closer releases the log
// file, if one was opened.
func New(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	out, closer, err := openSink(cfg.File)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	level := ParseLevel(cfg.Level)

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger(), closer, nil
}

func openSink(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return os.Stderr, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
