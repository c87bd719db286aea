package crossing

// EnemySnapshot is the position and speed of one enemy.
type EnemySnapshot struct {
	X, Y  float64
	Speed float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	Lives   int
	PlayerX float64
	PlayerY float64
	StarX   float64
	StarY   float64
	Enemies []EnemySnapshot
	Paused  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Tick: g.tick, Paused: g.paused}
	if g.world == nil {
		return s
	}

	w := g.world
	s.Score = w.Player.Score
	s.Lives = w.Player.Lives
	s.PlayerX, s.PlayerY = w.Player.X, w.Player.Y
	s.StarX, s.StarY = w.Star.X, w.Star.Y
	for _, e := range w.Enemies {
		s.Enemies = append(s.Enemies, EnemySnapshot{X: e.X, Y: e.Y, Speed: e.Speed})
	}
	return s
}
