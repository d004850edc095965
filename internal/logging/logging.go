// Package logging configures the process-wide logrus logger from the
// command line verbosity flags.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// levels is ordered from quietest to most verbose.
var levels = [...]log.Level{
	log.ErrorLevel,
	log.WarnLevel,
	log.InfoLevel,
	log.DebugLevel,
	log.TraceLevel,
}

// defaultLevel indexes Info in levels.
const defaultLevel = 2

// Level maps counted -v and -q flags to a log level. Info is the default and
// the result saturates at Error and Trace.
func Level(verbose, quiet int) log.Level {
	i := min(max(defaultLevel+verbose-quiet, 0), len(levels)-1)
	return levels[i]
}

// Config holds logger settings.
type Config struct {
	Verbose int
	Quiet   int
	// File receives log output when set. The interactive viewer owns the
	// terminal, so it logs to a file or not at all.
	File string
	// Discard drops output when no File is set.
	Discard bool
}

// Setup configures the standard logger and returns a function that closes
// any opened log file.
func Setup(cfg Config) (closeFn func() error, err error) {
	std := log.StandardLogger()
	std.SetLevel(Level(cfg.Verbose, cfg.Quiet))
	std.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		std.SetFormatter(&log.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		})
		std.SetOutput(f)
		return f.Close, nil
	case cfg.Discard:
		std.SetOutput(io.Discard)
	default:
		std.SetOutput(os.Stderr)
	}
	return func() error { return nil }, nil
}
