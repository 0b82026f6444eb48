package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-muncher/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a maze picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a maze.
Leaving a game or the score table returns to the menu, so one
session can cover several rounds.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select maze
  Tab          - High scores
  Q/Esc        - Quit

Examples:
  muncher menu
  muncher menu --fps 30
  muncher menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	applyGameFlags()

	store := openStore()
	defer closeStore(store)

	logger.Info("starting menu session")
	if err := tui.RunSession(store, runtimeConfig(store), logger); err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}
