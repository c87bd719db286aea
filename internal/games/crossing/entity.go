// Package crossing implements a lane-crossing arcade game.
// The player hops across stone lanes to reach the water while bugs race
// along the lanes, and a star waits on the board as a bonus pickup.
//
// The package holds pure game logic. Sprites are resolved through an
// ImageSource and drawn through a Canvas, so the platform owns loading,
// timing and the actual terminal.
package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/resources"
)

// HitboxSize is the side of the square collision box anchored at an entity's position.
const HitboxSize = 50

// ImageSource resolves sprite paths to loaded sprites.
// *resources.Cache satisfies it.
type ImageSource interface {
	Get(path string) (*resources.Sprite, bool)
}

// Entity is anything with a board position and a sprite.
type Entity struct {
	X, Y   float64
	Sprite string // Sprite path, a key into the ImageSource
}

// Pos returns the entity's anchor.
func (e *Entity) Pos() core.Vec {
	return core.Vec{X: e.X, Y: e.Y}
}

// Render draws the entity's sprite at its position.
// Sprites that have not loaded yet are skipped.
func (e *Entity) Render(dst Canvas, images ImageSource) {
	img, ok := images.Get(e.Sprite)
	if !ok {
		return
	}
	dst.DrawImage(img, e.X, e.Y)
}

// positioned is implemented by every entity.
type positioned interface {
	Pos() core.Vec
}

// collide reports whether the hitboxes of a and b overlap.
func collide(a, b positioned) bool {
	return core.Overlaps(a.Pos(), b.Pos(), HitboxSize)
}

// Direction is a one-cell move requested by the player.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
