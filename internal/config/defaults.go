package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
// It mirrors defaults/crossing.yaml and is used if the embedded file
// cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			Width:     505,
			Height:    606,
			ColWidth:  101,
			RowHeight: 83,
			Tiles: []string{
				"images/water-block.yaml",
				"images/stone-block.yaml",
				"images/stone-block.yaml",
				"images/stone-block.yaml",
				"images/grass-block.yaml",
				"images/grass-block.yaml",
			},
		},
		Enemies: EnemyConfig{
			Rows:       []int{0, 2, 3},
			BaseY:      60,
			StartX:     -100,
			WrapX:      500,
			ResetX:     -100,
			SpawnSpeed: Range{Min: 100, Max: 600},
			WrapSpeed:  Range{Min: 100, Max: 700},
		},
		Player: PlayerConfig{
			StartX: 200,
			StartY: 390,
			WaterY: 40,
			MinX:   40,
			MaxX:   400,
			Lives:  3,
		},
		Star: StarConfig{
			Columns: Range{Min: 0, Max: 5},
			Rows:    Range{Min: 1, Max: 5},
			OffsetY: -11,
		},
		Scoring: ScoringConfig{
			Water:      10,
			Star:       5,
			Bonus:      5,
			BonusEvery: 15,
		},
		Sprites: SpriteConfig{
			Enemy:  "images/enemy-bug.yaml",
			Player: "images/char-boy.yaml",
			Star:   "images/star.yaml",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCrossingYAML
}
