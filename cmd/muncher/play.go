package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-muncher/internal/games/muncher"
	"github.com/vovakirdan/pixel-muncher/internal/platform/tui"
	"github.com/vovakirdan/pixel-muncher/internal/registry"
)

// defaultMaze is played when no maze is named.
const defaultMaze = "classic"

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
)

var playCmd = &cobra.Command{
	Use:   "play [maze]",
	Short: "Play a maze",
	Long: `Start playing the specified maze (classic if omitted).

Controls:
  Arrows/WASD  - Steer (the turn is taken at the next junction)
  Enter/Space  - Start (Up/Down picks the difficulty first)
  P            - Hold
  R            - Back to the difficulty menu after the game ends
  Esc/B        - Leave while held or after the game ends
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow pursuer (default)
  hard   - Fast pursuer
  Any other value plays as easy.

Examples:
  muncher play
  muncher play tunnels --difficulty hard
  muncher play --maze ./my-maze.yaml
  muncher play --config ./my-muncher.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Play a maze file instead of a registered maze")

	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard")
}

// applyGameFlags passes the config and difficulty flags to games created afterwards.
func applyGameFlags() {
	muncher.SetConfigPath(flagConfig)
	muncher.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, args []string) error {
	applyGameFlags()

	game, err := resolveGame(args)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	logger.Info("starting game", "game", game.ID())
	if err := tui.Run(game, store, runtimeConfig(store), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveGame returns the game for --maze or the named registered maze.
func resolveGame(args []string) (registry.Game, error) {
	if flagMaze != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("use either a maze name or --maze, not both")
		}
		t, err := muncher.LoadTemplate(flagMaze)
		if err != nil {
			return nil, err
		}
		return muncher.New(t), nil
	}

	id := defaultMaze
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown maze %q; run 'muncher list' to see available mazes", id)
	}
	return registry.Create(id)
}
