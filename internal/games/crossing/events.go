package crossing

// Event is raised by the world during an update and handed to the platform,
// which decides how to present it.
type Event interface {
	event()
}

// BonusLifeEvent is raised when the player, out of lives on a score that is
// a multiple of the bonus interval, earns an extra life instead of losing.
type BonusLifeEvent struct {
	Score int // Score after the bonus points were added
	Lives int
}

// GameOverEvent is raised when the player runs out of lives.
// The player has already been reset when the event is delivered.
type GameOverEvent struct {
	Score int // Final score before the reset
}

func (BonusLifeEvent) event() {}
func (GameOverEvent) event()  {}
