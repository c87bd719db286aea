// Package config provides YAML/TOML game configuration loading and
// difficulty management for the crossing game.
package config

// CrossingConfig contains all configuration for the crossing game.
// Coordinates and sizes are in board pixels.
type CrossingConfig struct {
	Board      BoardConfig      `yaml:"board" toml:"board"`
	Enemies    EnemyConfig      `yaml:"enemies" toml:"enemies"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Star       StarConfig       `yaml:"star" toml:"star"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Sprites    SpriteConfig     `yaml:"sprites" toml:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// BoardConfig defines the grid and collision box.
type BoardConfig struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	ColWidth  float64 `yaml:"col_width" toml:"col_width"`
	RowHeight float64 `yaml:"row_height" toml:"row_height"`
	// Tiles lists the sprite drawn under each board row, top to bottom.
	Tiles []string `yaml:"tiles" toml:"tiles"`
}

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// EnemyConfig defines enemy placement and speed.
type EnemyConfig struct {
	Rows       []int   `yaml:"rows" toml:"rows"`
	BaseY      float64 `yaml:"base_y" toml:"base_y"`
	StartX     float64 `yaml:"start_x" toml:"start_x"`
	WrapX      float64 `yaml:"wrap_x" toml:"wrap_x"`
	ResetX     float64 `yaml:"reset_x" toml:"reset_x"`
	SpawnSpeed Range   `yaml:"spawn_speed" toml:"spawn_speed"` // pixels/second at construction
	WrapSpeed  Range   `yaml:"wrap_speed" toml:"wrap_speed"`   // pixels/second after wrapping
}

// PlayerConfig defines the player spawn point and movement limits.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x" toml:"start_x"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
	WaterY float64 `yaml:"water_y" toml:"water_y"` // y at or above which the player scores
	MinX   float64 `yaml:"min_x" toml:"min_x"`     // left moves allowed while x >= MinX
	MaxX   float64 `yaml:"max_x" toml:"max_x"`     // right moves allowed while x <= MaxX
	Lives  int     `yaml:"lives" toml:"lives"`
}

// StarConfig defines where the star may appear.
type StarConfig struct {
	Columns Range   `yaml:"columns" toml:"columns"`
	Rows    Range   `yaml:"rows" toml:"rows"`
	OffsetY float64 `yaml:"offset_y" toml:"offset_y"`
}

// ScoringConfig defines points and the bonus-life rule.
type ScoringConfig struct {
	Water      int `yaml:"water" toml:"water"`
	Star       int `yaml:"star" toml:"star"`
	Bonus      int `yaml:"bonus" toml:"bonus"`
	BonusEvery int `yaml:"bonus_every" toml:"bonus_every"`
}

// SpriteConfig maps entities to sprite paths.
type SpriteConfig struct {
	Enemy  string `yaml:"enemy" toml:"enemy"`
	Player string `yaml:"player" toml:"player"`
	Star   string `yaml:"star" toml:"star"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string is accepted and
// means "use the config as loaded".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
