package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Lives  int  // Remaining lives, 0 for games without lives
	Paused bool // Whether the game is paused
}

// Notice is a modal message raised by a game during a tick.
// The platform decides how to present it and when it is acknowledged.
type Notice struct {
	Title   string
	Message string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any notices raised during the tick.
type StepResult struct {
	State   GameState
	Notices []Notice
}
