package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// LoadCrossing loads the crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossing.{yaml,toml} ->
// ./configs/crossing.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its
// default value.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath("crossing.yaml"),
		userConfigPath("crossing.toml"),
		filepath.Join("configs", "crossing.yaml"),
		filepath.Join("configs", "crossing.toml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes path over the default config, choosing the format by extension.
func loadFile(path string) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal encodes cfg as "yaml" or "toml".
func Marshal(cfg CrossingConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		return yaml.Marshal(cfg)
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// Validate rejects values that would make the game misbehave or panic.
func (c CrossingConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Board.ColWidth > 0, "board.col_width must be positive")
	check(c.Board.RowHeight > 0, "board.row_height must be positive")
	check(c.Board.Width > 0 && c.Board.Height > 0, "board size must be positive")
	check(c.Enemies.SpawnSpeed.Max > c.Enemies.SpawnSpeed.Min, "enemies.spawn_speed must be a non-empty range")
	check(c.Enemies.WrapSpeed.Max > c.Enemies.WrapSpeed.Min, "enemies.wrap_speed must be a non-empty range")
	check(c.Star.Columns.Max > c.Star.Columns.Min, "star.columns must be a non-empty range")
	check(c.Star.Rows.Max > c.Star.Rows.Min, "star.rows must be a non-empty range")
	check(c.Player.Lives > 0, "player.lives must be positive")
	check(c.Scoring.BonusEvery > 0, "scoring.bonus_every must be positive")
	check(c.Sprites.Enemy != "" && c.Sprites.Player != "" && c.Sprites.Star != "", "sprites must name enemy, player and star")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
