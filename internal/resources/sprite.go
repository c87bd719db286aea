// Package resources loads sprite images and caches them by path.
// Loads complete asynchronously; the cache exposes a ready gate so the
// game loop can wait until every requested sprite is available.
package resources

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// ErrEmptySprite is returned when a sprite file has no art rows.
var ErrEmptySprite = errors.New("resources: sprite has no rows")

// Sprite is a text-art image. Spaces in Rows are transparent.
type Sprite struct {
	Name     string
	Rows     []string
	Color    core.Color
	OffsetY  float64 // Pixel offset of the art below the entity anchor
	Width    int     // Widest row, in runes
	Height   int
	Checksum uint64 // xxhash64 of the source file
}

// yamlSprite is the on-disk sprite format.
type yamlSprite struct {
	Name    string   `yaml:"name"`
	Color   string   `yaml:"color"`
	OffsetY float64  `yaml:"offset_y"`
	Rows    []string `yaml:"rows"`
}

// ParseSprite decodes a YAML sprite file.
func ParseSprite(data []byte) (*Sprite, error) {
	var ys yamlSprite
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(ys.Rows) == 0 {
		return nil, ErrEmptySprite
	}

	color, ok := core.ParseColor(ys.Color)
	if !ok {
		return nil, fmt.Errorf("resources: unknown color %q", ys.Color)
	}

	width := 0
	for _, row := range ys.Rows {
		width = core.Max(width, utf8.RuneCountInString(row))
	}

	return &Sprite{
		Name:     ys.Name,
		Rows:     ys.Rows,
		Color:    color,
		OffsetY:  ys.OffsetY,
		Width:    width,
		Height:   len(ys.Rows),
		Checksum: xxhash.Sum64(data),
	}, nil
}

// String returns the art rows joined with newlines.
func (s *Sprite) String() string {
	return strings.Join(s.Rows, "\n")
}
