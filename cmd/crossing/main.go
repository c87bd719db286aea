// crossing is a terminal lane-crossing arcade game.
//
// Usage:
//
//	crossing play [game]     - Play (default: crossing)
//	crossing list            - List available games
//	crossing sprites         - Load every sprite and report checksums
//	crossing config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Star Crossing - hop across the lanes in your terminal",
	Long: `Star Crossing is a terminal arcade game. Guide the player across the
stone lanes to the water while dodging bugs, and grab the star for bonus
points.

Available commands:
  play     - Play the game
  list     - Show all available games
  sprites  - Load every sprite and report checksums
  config   - Print the effective config as YAML or TOML

Examples:
  crossing play
  crossing play --difficulty hard
  crossing play --assets ./my-sprites --log crossing.log
  crossing config --format toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger builds the process logger and installs it as the default.
// With --log the logger writes to that file at debug level. Otherwise a
// full-screen command discards logs and other commands warn on stderr.
func setupLogger(fullScreen bool) (*log.Logger, func(), error) {
	if flagLogPath != "" {
		f, err := tea.LogToFile(flagLogPath, "crossing")
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logger := log.NewWithOptions(f, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
			Prefix:          "crossing",
		})
		log.SetDefault(logger)
		return logger, func() { f.Close() }, nil
	}

	var logger *log.Logger
	if fullScreen {
		logger = log.New(io.Discard)
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}
	log.SetDefault(logger)
	return logger, func() {}, nil
}
