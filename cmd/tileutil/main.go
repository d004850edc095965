// Package main is the entry point for tileutil, a viewer and checker for
// m-mazing tilesets.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/mmazing/internal/logging"
	"github.com/samdwyer/mmazing/internal/telemetry"
	"github.com/samdwyer/mmazing/internal/viewer"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithError(err).Warn(".env file not loaded")
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	closeLog, err := logging.Setup(cfg.logging)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.telemetry)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.WithError(err).Error("error shutting down telemetry")
			}
		}()
	}

	if err := run(ctx, cfg.viewer); err != nil {
		log.WithError(err).Error("tileutil failed")
		// Deferred cleanups would be skipped by os.Exit.
		stop()
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg viewer.Config) error {
	if cfg.Print {
		set, err := viewer.FileLoader(cfg.TileFile)(ctx)
		if err != nil {
			return err
		}
		return viewer.Print(os.Stdout, set)
	}

	v, err := viewer.New(cfg)
	if err != nil {
		return err
	}
	return v.Run(ctx)
}
