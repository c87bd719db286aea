package crossing

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// HUD placement in board pixels. The HUD sits above the board.
const (
	hudHeight   = 40
	hudBaseline = -20
	scoreTextX  = 10
	livesTextX  = 375
)

// World owns every entity and runs one tick of the rules.
type World struct {
	Enemies []*Enemy
	Player  *Player
	Star    *Star

	cfg        *config.CrossingConfig
	difficulty *config.DifficultyManager
	ticks      int
}

// NewWorld builds the enemies, player and star. Every random draw comes
// from rng, so equal seeds give equal games.
func NewWorld(cfg config.CrossingConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:        &cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}

	for _, row := range w.cfg.Enemies.Rows {
		y := w.cfg.Enemies.BaseY + w.cfg.Board.RowHeight*float64(row)
		w.Enemies = append(w.Enemies, NewEnemy(w.cfg.Enemies.StartX, y, w.cfg.Sprites.Enemy, &w.cfg.Enemies, rng, w.pace))
	}
	w.Player = NewPlayer(w.cfg)
	w.Star = NewStar(w.cfg.Sprites.Star, &w.cfg.Board, &w.cfg.Star, rng)

	return w
}

// pace is the difficulty factor applied to enemy speed draws.
func (w *World) pace() float64 {
	score := 0
	if w.Player != nil {
		score = w.Player.Score
	}
	return w.difficulty.Speed(1, score, w.ticks)
}

// Update advances the world by dt seconds: enemies, then the player, then the star.
// It returns the events raised during the tick.
func (w *World) Update(dt float64) []Event {
	w.ticks++

	for _, e := range w.Enemies {
		e.Update(dt)
	}
	events := w.Player.Update(w.Enemies, w.Star)
	w.Star.Update(w.Player)

	return events
}

// Render draws enemies, then the star, then the player, then the HUD.
func (w *World) Render(dst Canvas, images ImageSource) {
	for _, e := range w.Enemies {
		e.Render(dst, images)
	}
	w.Star.Render(dst, images)
	w.Player.Render(dst, images)

	dst.ClearRect(0, -hudHeight, w.cfg.Board.Width, hudHeight)
	dst.FillText(fmt.Sprintf("Score %d", w.Player.Score), scoreTextX, hudBaseline)
	dst.FillText(fmt.Sprintf("Lives %d", w.Player.Lives), livesTextX, hudBaseline)
}

// HandleInput forwards a move to the player.
func (w *World) HandleInput(dir Direction) {
	w.Player.HandleInput(dir)
}

// Sprites lists the sprite paths the world draws.
func (w *World) Sprites() []string {
	return []string{w.cfg.Sprites.Enemy, w.cfg.Sprites.Star, w.cfg.Sprites.Player}
}

// Ticks returns how many updates have run.
func (w *World) Ticks() int {
	return w.ticks
}
