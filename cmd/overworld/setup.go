package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-overworld/internal/config"
	"github.com/vovakirdan/tui-overworld/internal/platform/tui"
	"github.com/vovakirdan/tui-overworld/internal/player"
	"github.com/vovakirdan/tui-overworld/internal/registry"
	"github.com/vovakirdan/tui-overworld/internal/storage"
	"github.com/vovakirdan/tui-overworld/internal/world"
)

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns a logger writing to --log, or to fallback when unset.
// The returned closer releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	w := fallback
	closer := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closer = func() {
				//nolint:errcheck // Best-effort close on exit
				f.Close()
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer
}

// loadConfig loads the config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	return cfg
}

// loadWorld resolves --world-file, then --world, then the config's world.
func loadWorld(cfg config.Config) (world.Definition, error) {
	if flagWorldFile != "" {
		data, err := os.ReadFile(flagWorldFile)
		if err != nil {
			return world.Definition{}, fmt.Errorf("failed to read world %s: %w", flagWorldFile, err)
		}
		return world.ParseDefinition(data)
	}

	id := flagWorld
	if id == "" {
		id = cfg.World
	}
	if !registry.Exists(id) {
		return world.Definition{}, fmt.Errorf("unknown world %q (run 'overworld list' to see available worlds)", id)
	}
	return registry.Lookup(id)
}

// openStore opens the position store behind a write-behind buffer.
// When the database cannot be opened, positions live in memory only.
func openStore(logger *log.Logger) *storage.WriteBehind {
	kv, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, positions will not be saved", "error", err)
		kv = storage.NewMemoryStore()
	}
	return storage.NewWriteBehind(kv, logger)
}

// openDirectStore opens the database without buffering or fallback, for
// commands that only inspect or edit saved positions.
func openDirectStore() storage.KV {
	kv, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("%v", err)
	}
	return kv
}

// newEnvironment loads config and world and builds the shared environment.
func newEnvironment(store player.Store, logger *log.Logger) *tui.Environment {
	cfg := loadConfig()
	def, err := loadWorld(cfg)
	if err != nil {
		fatal("%v", err)
	}

	env, err := tui.NewEnvironment(cfg, def, store, logger)
	if err != nil {
		fatal("%v", err)
	}
	return env
}
