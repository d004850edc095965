package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/samdwyer/mmazing/internal/logging"
	"github.com/samdwyer/mmazing/internal/telemetry"
	"github.com/samdwyer/mmazing/internal/viewer"
)

// Environment variables read as flag defaults.
const (
	envTileFile     = "TILEUTIL_TILE_FILE"
	envStartIndex   = "TILEUTIL_START_INDEX"
	envLogFile      = "TILEUTIL_LOG_FILE"
	envOTLPEndpoint = "TILEUTIL_OTLP_ENDPOINT"
	envOTLPHeaders  = "TILEUTIL_OTLP_HEADERS"
)

// countFlag is a boolean-style flag that counts repeats, so -v -v is two.
type countFlag int

func (c *countFlag) String() string   { return strconv.Itoa(int(*c)) }
func (c *countFlag) IsBoolFlag() bool { return true }

func (c *countFlag) Set(s string) error {
	// A bare -v arrives as "true"; -v=3 sets the count directly.
	switch s {
	case "true":
		*c++
	case "false":
		*c = 0
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid count %q", s)
		}
		*c = countFlag(n)
	}
	return nil
}

type config struct {
	viewer    viewer.Config
	logging   logging.Config
	telemetry telemetry.Config
}

// parseConfig reads flags from args, falling back to the environment for
// anything not given on the command line.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (config, error) {
	var cfg config

	startIndex := 0
	if s := getenv(envStartIndex); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envStartIndex, err)
		}
		startIndex = n
	}

	var verbose, quiet countFlag

	fs := flag.NewFlagSet("tileutil", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: tileutil [flags]\n\nView and check m-mazing tilesets.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nKeys:\n  %s\n", "←/→ cycle, Home/End first/last, [/] rotate, k/u toggle used, r reload, p print, q quit")
	}
	fs.StringVar(&cfg.viewer.TileFile, "tile-file", getenv(envTileFile), "tileset `file` to view (default: built-in sample)")
	fs.IntVar(&cfg.viewer.StartIndex, "start-idx", startIndex, "index of the first tile shown")
	fs.BoolVar(&cfg.viewer.Watch, "watch", true, "reload when the tileset file changes")
	fs.BoolVar(&cfg.viewer.Print, "print", false, "print every tile with its reachable cells and exit")
	fs.StringVar(&cfg.viewer.LogFile, "log-file", getenv(envLogFile), "write logs to `file`")
	fs.Var(&verbose, "v", "more log output (repeatable)")
	fs.Var(&quiet, "q", "less log output (repeatable)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if verbose > 0 && quiet > 0 {
		return cfg, fmt.Errorf("-v and -q cannot be combined")
	}

	cfg.logging = logging.Config{
		Verbose: int(verbose),
		Quiet:   int(quiet),
		File:    cfg.viewer.LogFile,
		// The viewer owns the terminal, so without a log file there is
		// nowhere to write.
		Discard: !cfg.viewer.Print,
	}
	cfg.telemetry = telemetry.Config{
		Endpoint: getenv(envOTLPEndpoint),
		Headers:  getenv(envOTLPHeaders),
	}
	return cfg, nil
}
