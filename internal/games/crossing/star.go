package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Star is the collectible. Collecting it moves it to another random cell.
type Star struct {
	Entity

	board *config.BoardConfig
	cfg   *config.StarConfig
	rng   *rand.Rand
}

// NewStar creates a star on a random cell.
func NewStar(sprite string, board *config.BoardConfig, cfg *config.StarConfig, rng *rand.Rand) *Star {
	s := &Star{
		Entity: Entity{Sprite: sprite},
		board:  board,
		cfg:    cfg,
		rng:    rng,
	}
	s.respawn()
	return s
}

// Update runs the star's own collection check against the player.
func (s *Star) Update(player *Player) {
	s.Collection(player)
}

// Collection moves the star to a new cell if the player is touching it.
// Scoring is the player's concern.
func (s *Star) Collection(player *Player) bool {
	if !collide(s, player) {
		return false
	}
	s.respawn()
	return true
}

func (s *Star) respawn() {
	s.X = s.board.ColWidth * float64(randomInt(s.rng, s.cfg.Columns))
	s.Y = s.board.RowHeight*float64(randomInt(s.rng, s.cfg.Rows)) + s.cfg.OffsetY
}
