package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Enemy is a bug racing left to right along a lane.
// It wraps back to the left edge with a fresh speed after leaving the board.
type Enemy struct {
	Entity
	Speed float64 // pixels per second

	cfg  *config.EnemyConfig
	rng  *rand.Rand
	pace func() float64
}

// NewEnemy creates an enemy at (x, y) with a speed drawn from the spawn range.
// pace scales every speed draw; nil means 1.
func NewEnemy(x, y float64, sprite string, cfg *config.EnemyConfig, rng *rand.Rand, pace func() float64) *Enemy {
	e := &Enemy{
		Entity: Entity{X: x, Y: y, Sprite: sprite},
		cfg:    cfg,
		rng:    rng,
		pace:   pace,
	}
	e.Speed = e.drawSpeed(cfg.SpawnSpeed)
	return e
}

// Update moves the enemy by speed*dt and wraps it once it is past the right edge.
func (e *Enemy) Update(dt float64) {
	e.X += e.Speed * dt

	if e.X > e.cfg.WrapX {
		e.X = e.cfg.ResetX
		e.Speed = e.drawSpeed(e.cfg.WrapSpeed)
	}
}

func (e *Enemy) drawSpeed(r config.Range) float64 {
	speed := float64(randomInt(e.rng, r))
	if e.pace != nil {
		speed *= e.pace()
	}
	return speed
}

// randomInt draws a uniform integer in [r.Min, r.Max).
func randomInt(rng *rand.Rand, r config.Range) int {
	return r.Min + rng.Intn(r.Max-r.Min)
}
