package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/assets"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/resources"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game starts once every sprite has loaded.

Controls:
  Arrows/WASD/hjkl - Move one cell
  Enter/Space      - Dismiss a message
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, enemy pace progresses from the lowest level
  normal - Enemy pace starts at 30%
  hard   - 2 lives, enemy pace starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --config ./my-crossing.toml
  crossing play --assets ./sprites`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory to load sprites from instead of the built-in set")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "crossing"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'crossing list' to see available games.")
		os.Exit(1)
	}

	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cache := resources.NewCache(newSpriteFetcher(logger), logger)
	runErr := tui.Run(game, cache, cfg, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)
	return nil
}

// spriteFS returns the sprite source: --assets if set, else the built-in set.
func spriteFS() fs.FS {
	if flagAssets != "" {
		return os.DirFS(flagAssets)
	}
	return assets.FS
}

// newSpriteFetcher reads sprites from spriteFS. Caches built on the same
// fetcher share in-flight reads.
func newSpriteFetcher(logger *log.Logger) *resources.FSFetcher {
	return resources.NewFSFetcher(spriteFS(), logger)
}
