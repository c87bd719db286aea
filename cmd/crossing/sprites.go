package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/resources"
)

var (
	flagTimeout       time.Duration
	flagPreview       bool
	flagSpriteConfigs []string
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Load every sprite and report checksums",
	Long: `Loads every sprite the game draws through the same cache the game uses
and prints its size and xxhash64 checksum. Sprites that fail to load stay
pending, so the command gives up after --timeout and lists them.

--config may be repeated. Each config gets its own cache and all of them
load at once, sharing reads of the sprites they have in common.

Examples:
  crossing sprites
  crossing sprites --preview
  crossing sprites --config easy.yaml --config night.toml
  crossing sprites --assets ./sprites --timeout 2s`,
	Args: cobra.NoArgs,
	Run:  runSprites,
}

func init() {
	spritesCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory to load sprites from instead of the built-in set")
	spritesCmd.Flags().StringArrayVar(&flagSpriteConfigs, "config", nil, "Path to custom game config (YAML or TOML), repeatable")
	spritesCmd.Flags().DurationVar(&flagTimeout, "timeout", 5*time.Second, "How long to wait for sprites to load")
	spritesCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print each sprite's art")
}

// spriteSet is the cache holding one config's sprites.
type spriteSet struct {
	config string
	cache  *resources.Cache
}

func (s spriteSet) label() string {
	if s.config == "" {
		return "default config"
	}
	return s.config
}

// loadSpriteSets preloads each config's sprites into its own cache, all
// through fetcher, and waits for every cache. The sets are returned even
// when a wait fails so pending paths can be reported.
func loadSpriteSets(ctx context.Context, configs []string, fetcher resources.Fetcher, logger *log.Logger) ([]spriteSet, error) {
	if len(configs) == 0 {
		configs = []string{""}
	}

	sets := make([]spriteSet, len(configs))
	for i, path := range configs {
		crossing.SetConfigPath(path)
		cache := resources.NewCache(fetcher, logger)
		crossing.New().Preload(cache)
		sets[i] = spriteSet{config: path, cache: cache}
	}

	var group errgroup.Group
	for _, set := range sets {
		group.Go(func() error {
			if err := set.cache.WaitReady(ctx); err != nil {
				return fmt.Errorf("%s: %w", set.label(), err)
			}
			return nil
		})
	}
	return sets, group.Wait()
}

func runSprites(cmd *cobra.Command, args []string) {
	logger, closeLog, err := setupLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()
	sets, waitErr := loadSpriteSets(ctx, flagSpriteConfigs, newSpriteFetcher(logger), logger)

	var pending []string
	for i, set := range sets {
		if len(sets) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", set.label())
		}
		pending = append(pending, printSpriteTable(set.cache)...)
	}

	if waitErr != nil {
		if errors.Is(waitErr, context.DeadlineExceeded) {
			fmt.Fprintf(os.Stderr, "Error: still pending after %s: %s\n", flagTimeout, strings.Join(pending, ", "))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", waitErr)
		}
		os.Exit(1)
	}
}

// printSpriteTable prints one row per tracked sprite and returns the paths
// still pending.
func printSpriteTable(cache *resources.Cache) []string {
	paths := cache.Paths()
	maxPathLen := 4 // "Path" header
	for _, p := range paths {
		maxPathLen = max(maxPathLen, len(p))
	}

	fmt.Printf("  %-*s  %-5s  %-16s  %s\n", maxPathLen, "Path", "Size", "Checksum", "Color")
	fmt.Printf("  %-*s  %-5s  %-16s  %s\n", maxPathLen, "----", "----", "--------", "-----")

	var pending []string
	for _, p := range paths {
		s, ok := cache.Get(p)
		if !ok {
			pending = append(pending, p)
			fmt.Printf("  %-*s  %-5s  %-16s\n", maxPathLen, p, "-", "pending")
			continue
		}
		fmt.Printf("  %-*s  %-5s  %016x  %s\n", maxPathLen, p, fmt.Sprintf("%dx%d", s.Width, s.Height), s.Checksum, s.Color)
		if flagPreview {
			fmt.Println(indent(s.String(), "      "))
		}
	}

	loaded, total := cache.Progress()
	fmt.Println()
	fmt.Printf("%d/%d sprites loaded\n", loaded, total)
	return pending
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
