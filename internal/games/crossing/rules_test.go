package crossing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

func testConfig() config.CrossingConfig {
	return config.DefaultCrossingConfig()
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Entity
		expected bool
	}{
		{"same spot", Entity{X: 200, Y: 390}, Entity{X: 200, Y: 390}, true},
		{"inside box", Entity{X: 200, Y: 390}, Entity{X: 249, Y: 341}, true},
		{"touching x edge", Entity{X: 200, Y: 390}, Entity{X: 250, Y: 390}, false},
		{"touching y edge", Entity{X: 200, Y: 390}, Entity{X: 200, Y: 340}, false},
		{"far away", Entity{X: 0, Y: 0}, Entity{X: 404, Y: 321}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := collide(&tc.a, &tc.b); got != tc.expected {
				t.Errorf("collide(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := collide(&tc.b, &tc.a); got != tc.expected {
				t.Errorf("collide(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEnemyWrapBoundary(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(1))

	e := NewEnemy(-100, 60, cfg.Sprites.Enemy, &cfg.Enemies, rng, nil)
	e.Speed = 200
	e.Update(3.0)
	if e.X != 500 || e.Speed != 200 {
		t.Errorf("after dt=3.0: x=%v speed=%v, expected x=500 with no wrap", e.X, e.Speed)
	}

	e.X = -100
	e.Speed = 200
	e.Update(3.01)
	if e.X != -100 {
		t.Errorf("after dt=3.01: x=%v, expected wrap to -100", e.X)
	}
	if e.Speed < 100 || e.Speed >= 700 || e.Speed != math.Trunc(e.Speed) {
		t.Errorf("wrap speed = %v, expected an integer in [100, 700)", e.Speed)
	}
}

func TestEnemySpeedRanges(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		e := NewEnemy(-100, 60, cfg.Sprites.Enemy, &cfg.Enemies, rng, nil)
		if e.Speed < 100 || e.Speed >= 600 {
			t.Fatalf("spawn speed = %v, expected [100, 600)", e.Speed)
		}

		e.X = 501
		e.Update(0)
		if e.Speed < 100 || e.Speed >= 700 {
			t.Fatalf("wrap speed = %v, expected [100, 700)", e.Speed)
		}
	}
}

func TestEnemyPace(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(3))

	e := NewEnemy(-100, 60, cfg.Sprites.Enemy, &cfg.Enemies, rng, func() float64 { return 1.5 })
	base := e.Speed / 1.5
	if base < 100 || base >= 600 || base != math.Trunc(base) {
		t.Errorf("spawn speed %v is not a paced integer draw", e.Speed)
	}
}

func TestPlayerHandleInput(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		dir   Direction
		wantX float64
		wantY float64
	}{
		{"left from limit", 40, 390, DirLeft, -61, 390},
		{"left past limit", 39, 390, DirLeft, 39, 390},
		{"right from limit", 400, 390, DirRight, 501, 390},
		{"right past limit", 401, 390, DirRight, 401, 390},
		{"down at bottom", 200, 390, DirDown, 200, 390},
		{"down above bottom", 200, 307, DirDown, 200, 390},
		{"up", 200, 390, DirUp, 200, 307},
		{"up into water", 200, 58, DirUp, 200, -25},
		{"up is never blocked", 200, -25, DirUp, 200, -108},
	}

	cfg := testConfig()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(&cfg)
			p.X, p.Y = tc.x, tc.y
			p.HandleInput(tc.dir)
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("HandleInput(%v) from (%v,%v) = (%v,%v), expected (%v,%v)",
					tc.dir, tc.x, tc.y, p.X, p.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlayerWaterRule(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg)
	star := &Star{Entity: Entity{X: 404, Y: 72}}

	p.Y = -25
	p.Update(nil, star)
	if p.Score != 10 || p.Y != 390 {
		t.Fatalf("after reaching water: score=%d y=%v, expected 10 and 390", p.Score, p.Y)
	}

	p.Update(nil, star)
	if p.Score != 10 {
		t.Errorf("second update awarded again: score=%d", p.Score)
	}
}

func TestPlayerWaterRuleBoundary(t *testing.T) {
	cfg := testConfig()
	star := &Star{Entity: Entity{X: 404, Y: 72}}

	tests := []struct {
		y     float64
		score int
	}{
		{40, 10},
		{41, 0},
	}

	for _, tc := range tests {
		p := NewPlayer(&cfg)
		p.Y = tc.y
		p.Update(nil, star)
		if p.Score != tc.score {
			t.Errorf("y=%v: score=%d, expected %d", tc.y, p.Score, tc.score)
		}
	}
}

func TestPlayerGameOver(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg)
	p.Lives = 1
	p.Score = 7
	p.X = 303
	enemy := &Enemy{Entity: Entity{X: 303, Y: 390}}

	events := p.Collision([]*Enemy{enemy})

	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1", len(events))
	}
	over, ok := events[0].(GameOverEvent)
	if !ok {
		t.Fatalf("event = %T, expected GameOverEvent", events[0])
	}
	if over.Score != 7 {
		t.Errorf("GameOverEvent.Score = %d, expected 7", over.Score)
	}
	if p.Score != 0 || p.Lives != 3 || p.X != 200 || p.Y != 390 {
		t.Errorf("after game over: score=%d lives=%d pos=(%v,%v), expected reset",
			p.Score, p.Lives, p.X, p.Y)
	}
}

func TestPlayerGameOverPerEnemy(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Lives = 1
	p := NewPlayer(&cfg)

	// Both enemies sit on the spawn point, so the reset after the first
	// game over puts the player straight into the second one.
	enemies := []*Enemy{
		{Entity: Entity{X: 200, Y: 390}},
		{Entity: Entity{X: 200, Y: 390}},
	}

	events := p.Collision(enemies)
	if len(events) != 2 {
		t.Fatalf("got %d events, expected one game over per overlapping enemy", len(events))
	}
	for i, ev := range events {
		if _, ok := ev.(GameOverEvent); !ok {
			t.Errorf("events[%d] = %T, expected GameOverEvent", i, ev)
		}
	}
}

func TestPlayerLosesLife(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg)
	p.Y = 224
	enemy := &Enemy{Entity: Entity{X: 180, Y: 226}}

	events := p.Collision([]*Enemy{enemy})

	if len(events) != 0 {
		t.Errorf("got %d events, expected none", len(events))
	}
	if p.Lives != 2 || p.Y != 390 {
		t.Errorf("lives=%d y=%v, expected 2 and 390", p.Lives, p.Y)
	}
}

func TestPlayerBonusLife(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg)
	p.Lives = 1
	p.Score = 15
	enemy := &Enemy{Entity: Entity{X: 200, Y: 390}}

	events := p.Collision([]*Enemy{enemy})

	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1", len(events))
	}
	bonus, ok := events[0].(BonusLifeEvent)
	if !ok {
		t.Fatalf("event = %T, expected BonusLifeEvent", events[0])
	}
	if bonus.Score != 20 || bonus.Lives != 1 {
		t.Errorf("BonusLifeEvent = %+v, expected score 20 lives 1", bonus)
	}
	if p.Score != 20 || p.Lives != 1 || p.Y != 390 {
		t.Errorf("score=%d lives=%d y=%v, expected 20, 1, 390", p.Score, p.Lives, p.Y)
	}
}

func TestPlayerCollection(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg)

	p.Collection(&Star{Entity: Entity{X: 200, Y: 379}})
	if p.Score != 5 {
		t.Errorf("score = %d, expected 5", p.Score)
	}

	p.Collection(&Star{Entity: Entity{X: 0, Y: 72}})
	if p.Score != 5 {
		t.Errorf("collected a distant star: score = %d", p.Score)
	}
}

func TestStarRespawnCells(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(11))
	s := NewStar(cfg.Sprites.Star, &cfg.Board, &cfg.Star, rng)
	p := NewPlayer(&cfg)

	validX := map[float64]bool{0: true, 101: true, 202: true, 303: true, 404: true}
	validY := map[float64]bool{72: true, 155: true, 238: true, 321: true}

	for i := 0; i < 200; i++ {
		if !validX[s.X] || !validY[s.Y] {
			t.Fatalf("star at (%v,%v), expected a valid cell", s.X, s.Y)
		}
		p.X, p.Y = s.X, s.Y
		if !s.Collection(p) {
			t.Fatal("star did not detect the player on top of it")
		}
	}
}
