// muncher is a maze-chase game for the terminal: clear the maze of dots
// while a pursuer hunts you down.
//
// Usage:
//
//	muncher list               - List available mazes
//	muncher play [maze]        - Play a maze (default: classic)
//	muncher menu               - Pick mazes interactively
//	muncher serve              - Start SSH server for remote play
//	muncher scores [maze]      - Show high scores
//	muncher validate <file>    - Check a maze file
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-muncher/internal/games/muncher"
	"github.com/vovakirdan/pixel-muncher/internal/games/muncher/mazes"
	"github.com/vovakirdan/pixel-muncher/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

// logger is configured by setupLogging before any command runs.
var logger = log.New(io.Discard)

// logFile is closed by main after the command returns.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "muncher",
	Short: "Pixel Muncher - a maze chase in your terminal",
	Long: `Pixel Muncher is a terminal maze-chase game. Eat every dot in the
maze while the pursuer closes in. Three lives, two difficulties.

Available commands:
  list      - Show all available mazes
  play      - Play a maze directly
  menu      - Interactive maze picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  validate  - Check a maze file for errors

Examples:
  muncher list
  muncher play
  muncher play tunnels --difficulty hard
  muncher play --maze ./my-maze.yaml
  muncher serve --ssh :2222
  muncher scores classic`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup configures logging and registers mazes from ~/.arcade/mazes.
func setup(_ *cobra.Command, _ []string) error {
	if err := setupLogging(); err != nil {
		return err
	}
	muncher.SetLogger(logger)
	registerUserMazes(mazes.UserDir())
	return nil
}

func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "muncher",
		Level:           level,
	})
	return nil
}

// registerUserMazes adds every valid maze under dir to the registry.
// Broken files and IDs that clash with a registered maze are logged and skipped.
func registerUserMazes(dir string) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		return
	}

	found, skipped, err := mazes.NewLoader(dir).LoadAll()
	if err != nil {
		logger.Warn("cannot scan user mazes", "dir", dir, "error", err)
		return
	}
	for path, perr := range skipped {
		logger.Warn("skipping maze file", "path", path, "error", perr)
	}

	for _, m := range found {
		if registry.Exists(m.ID) {
			logger.Warn("maze id already registered", "id", m.ID)
			continue
		}
		t, err := muncher.BuildTemplate(m)
		if err != nil {
			logger.Warn("skipping invalid maze", "id", m.ID, "error", err)
			continue
		}
		muncher.Register(t)
		logger.Debug("registered user maze", "id", t.ID)
	}
}
