package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Player is the character hopping across the lanes.
type Player struct {
	Entity
	Score int
	Lives int

	cfg *config.CrossingConfig
}

// NewPlayer creates a player at the start position with full lives.
func NewPlayer(cfg *config.CrossingConfig) *Player {
	p := &Player{
		Entity: Entity{Sprite: cfg.Sprites.Player},
		cfg:    cfg,
	}
	p.Reset()
	return p
}

// Update applies the water rule, then enemy collisions, then star collection.
func (p *Player) Update(enemies []*Enemy, star *Star) []Event {
	if p.Y <= p.cfg.Player.WaterY {
		p.Y = p.cfg.Player.StartY
		p.Score += p.cfg.Scoring.Water
	}

	events := p.Collision(enemies)
	p.Collection(star)
	return events
}

// HandleInput moves the player one cell. Bounds are checked before the move,
// so a move from exactly the limit is still allowed. Up is never blocked.
func (p *Player) HandleInput(dir Direction) {
	switch dir {
	case DirUp:
		p.Y -= p.cfg.Board.RowHeight
	case DirDown:
		if p.Y < p.cfg.Player.StartY {
			p.Y += p.cfg.Board.RowHeight
		}
	case DirLeft:
		if p.X >= p.cfg.Player.MinX {
			p.X -= p.cfg.Board.ColWidth
		}
	case DirRight:
		if p.X <= p.cfg.Player.MaxX {
			p.X += p.cfg.Board.ColWidth
		}
	}
}

// Collision checks the player against every enemy.
//
// The bonus and game-over rules are evaluated once per enemy, not once per
// call, so several events can be raised in the same tick.
func (p *Player) Collision(enemies []*Enemy) []Event {
	var events []Event

	for _, e := range enemies {
		if collide(p, e) {
			p.Lives--
			p.Y = p.cfg.Player.StartY
		}

		s := p.cfg.Scoring
		if p.Score != 0 && p.Score%s.BonusEvery == 0 && p.Lives == 0 {
			p.Lives++
			p.Score += s.Bonus
			p.Y = p.cfg.Player.StartY
			events = append(events, BonusLifeEvent{Score: p.Score, Lives: p.Lives})
		}

		if p.Lives == 0 {
			events = append(events, GameOverEvent{Score: p.Score})
			p.Reset()
		}
	}

	return events
}

// Collection awards star points if the player is touching the star.
func (p *Player) Collection(star *Star) {
	if collide(p, star) {
		p.Score += p.cfg.Scoring.Star
	}
}

// Reset restores the start position, zero score and full lives.
func (p *Player) Reset() {
	p.X = p.cfg.Player.StartX
	p.Y = p.cfg.Player.StartY
	p.Score = 0
	p.Lives = p.cfg.Player.Lives
}
