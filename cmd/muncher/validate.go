package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-muncher/internal/games/muncher"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check maze files for errors",
	Long: `Parse and validate maze files without playing them.

A valid maze is rectangular, uses only known tile codes, has both
spawns on open tiles and at least one collectible besides the
player's spawn tile.

Examples:
  muncher validate ./my-maze.yaml
  muncher validate ~/.arcade/mazes/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		t, err := muncher.LoadTemplate(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s: %q (%dx%d, %d collectibles)\n",
			path, t.ID, t.Grid.Width(), t.Grid.Height(), t.Grid.CountEdible())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d maze files invalid", failed, len(args))
	}
	return nil
}
