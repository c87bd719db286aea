package crossing

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/resources"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// moves maps platform actions to player moves, in the order they are applied.
var moves = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// Game adapts World to the platform's game interface.
type Game struct {
	world   *World
	cfg     config.CrossingConfig
	loaded  bool
	runtime core.RuntimeConfig
	images  ImageSource
	paused  bool
	tick    uint64
}

// New creates a new crossing game instance.
func New() *Game {
	return &Game{images: noImages{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Crossing"
}

// Preload queues every sprite the game draws. Rendering uses cache from now on.
func (g *Game) Preload(cache *resources.Cache) {
	g.ensureConfig()
	g.images = cache
	cache.Load(g.Sprites()...)
}

// Sprites lists board tiles followed by entity sprites, without duplicates.
func (g *Game) Sprites() []string {
	g.ensureConfig()

	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, tile := range g.cfg.Board.Tiles {
		add(tile)
	}
	add(g.cfg.Sprites.Enemy)
	add(g.cfg.Sprites.Star)
	add(g.cfg.Sprites.Player)
	return paths
}

// Reset builds a fresh world seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ensureConfig()
	g.runtime = runtime
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
	g.tick = 0
}

// ensureConfig loads the config once. A rejected file falls back to defaults.
func (g *Game) ensureConfig() {
	if g.loaded {
		return
	}

	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		log.Warn("config rejected, using defaults", "game", g.ID(), "path", configPath, "error", err)
		cfg = config.DefaultCrossingConfig()
	}
	config.ApplyCrossingPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.loaded = true
}

// Step applies this frame's moves and advances the world by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	for _, m := range moves {
		if in.Has(m.action) {
			g.world.HandleInput(m.dir)
		}
	}

	events := g.world.Update(dt)
	return core.StepResult{
		State:   g.State(),
		Notices: g.notices(events),
	}
}

// notices turns world events into modal messages for the platform.
func (g *Game) notices(events []Event) []core.Notice {
	var out []core.Notice

	for _, ev := range events {
		switch e := ev.(type) {
		case BonusLifeEvent:
			log.Info("bonus life", "score", e.Score, "lives", e.Lives)
			out = append(out, core.Notice{
				Title:   "BONUS LIFE",
				Message: fmt.Sprintf("One more life and +%d points! Score: %d", g.cfg.Scoring.Bonus, e.Score),
			})
		case GameOverEvent:
			log.Info("game over", "score", e.Score, "tick", g.tick)
			out = append(out, core.Notice{
				Title:   "GAME OVER",
				Message: fmt.Sprintf("Final score: %d", e.Score),
			})
		}
	}

	return out
}

// Render draws the board tiles and the world centered on the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	board := g.boardRect(dst)
	if board.X < 0 || board.Bottom() > dst.Height() {
		g.drawCenteredMessage(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", board.W, board.Bottom()))
		return
	}

	canvas := NewScreenCanvas(dst, board, g.cfg.Board.ColWidth, g.cfg.Board.RowHeight)
	g.renderTiles(canvas)
	g.world.Render(canvas, g.images)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// boardRect returns the board area. Line 0 is left for the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	cols := int(math.Round(g.cfg.Board.Width / g.cfg.Board.ColWidth))
	w := cols * CellsPerColumn
	h := len(g.cfg.Board.Tiles) * LinesPerRow
	return core.NewRect((dst.Width()-w)/2, 1, w, h)
}

func (g *Game) renderTiles(dst Canvas) {
	cols := int(math.Round(g.cfg.Board.Width / g.cfg.Board.ColWidth))

	for row, tile := range g.cfg.Board.Tiles {
		img, ok := g.images.Get(tile)
		if !ok {
			continue
		}
		for col := 0; col < cols; col++ {
			dst.DrawImage(img, float64(col)*g.cfg.Board.ColWidth, float64(row)*g.cfg.Board.RowHeight)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:  g.world.Player.Score,
		Lives:  g.world.Player.Lives,
		Paused: g.paused,
	}
}

// noImages is used until Preload hands the game a cache.
type noImages struct{}

func (noImages) Get(string) (*resources.Sprite, bool) { return nil, false }

// Register the game with the registry
func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
}
