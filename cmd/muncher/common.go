package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/pixel-muncher/internal/core"
	"github.com/vovakirdan/pixel-muncher/internal/storage"
)

// runtimeConfig builds a config sized to the current terminal.
func runtimeConfig(store *storage.Store) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	if store != nil {
		cfg.Prefs = store
	}
	return cfg
}

// openStore opens the scores database. The game still works without it,
// so a failure is reported and nil returned.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}
