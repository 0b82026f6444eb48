package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-muncher/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available mazes",
	Long: `Shows every registered maze: the built-in ones plus any valid
maze files found under ~/.arcade/mazes.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	mazes := registry.List()
	if len(mazes) == 0 {
		fmt.Fprintln(out, "No mazes available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		Headers("ID", "TITLE")
	for _, m := range mazes {
		t.Row(m.ID, m.Title)
	}

	fmt.Fprintln(out, t.Render())
	fmt.Fprintln(out, "Run 'muncher play <id>' to play a maze.")
	return nil
}
