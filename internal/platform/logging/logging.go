// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Format selects the log line encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options controls logger setup.
type Options struct {
	Level  string
	Format Format
	Output io.Writer
}

// Configure applies options to the standard logrus logger.
func Configure(opts Options) error {
	return apply(log.StandardLogger(), opts)
}

// New returns a dedicated logger, mostly for tests.
func New(opts Options) (*log.Logger, error) {
	logger := log.New()
	if err := apply(logger, opts); err != nil {
		return nil, err
	}
	return logger, nil
}

func apply(logger *log.Logger, opts Options) error {
	levelName := strings.TrimSpace(opts.Level)
	if levelName == "" {
		levelName = log.InfoLevel.String()
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", levelName, err)
	}
	logger.SetLevel(level)

	switch Format(strings.ToLower(strings.TrimSpace(string(opts.Format)))) {
	case FormatJSON:
		logger.SetFormatter(&log.JSONFormatter{})
	case FormatText, "":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unsupported log format %q", opts.Format)
	}
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}
	return nil
}
