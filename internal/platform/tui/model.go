package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/resources"
)

// maxDelta caps the time step handed to the game after a stall.
const maxDelta = 250 * time.Millisecond

// Model is the Bubble Tea model for running arcade games.
//
// Nothing is simulated until the sprite cache is ready. After that every
// tick steps the game by the wall-clock time since the previous tick.
// Notices raised by the game are shown one at a time and suspend the
// simulation until dismissed.
type Model struct {
	game       registry.Game
	cache      *resources.Cache
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	inputFrame core.InputFrame
	gameState  core.GameState
	notices    []core.Notice
	ready      bool
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom line of the terminal is reserved for the help view.
func NewModel(game registry.Game, cache *resources.Cache, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		cache:      cache,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger.With("run", uuid.NewString(), "game", game.ID()),
		ctx:        ctx,
		cancel:     cancel,
		inputFrame: core.NewInputFrame(),
	}
}

// Init queues the game's sprites, resets the game and waits for the cache.
// The tick loop starts only after the cache reports ready.
func (m Model) Init() tea.Cmd {
	m.game.Preload(m.cache)
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "fps", m.config.TickRate)

	return tea.Batch(waitAssetsCmd(m.ctx, m.cache), loadingTickCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case assetsReadyMsg:
		return m.handleReady(msg)

	case loadingTickMsg:
		if m.ready {
			return m, nil
		}
		return m, loadingTickCmd()

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.cancel()
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	// A pending notice swallows input until it is dismissed
	if len(m.notices) > 0 {
		if m.inputFrame.Has(core.ActionConfirm) {
			m.notices = m.notices[1:]
		}
		m.inputFrame.Clear()
	}

	return m, nil
}

// handleResize processes window resize events.
// The game keeps its state and lays itself out on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width

	return m, nil
}

// handleReady opens the gate and starts the tick loop.
func (m Model) handleReady(msg assetsReadyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("sprites never became ready", "error", msg.err)
		return m, tea.Quit
	}

	_, total := m.cache.Progress()
	m.logger.Info("sprites ready", "count", total)

	m.ready = true
	m.lastTick = time.Now()
	m.gameState = m.game.State()
	return m, tickCmd(m.config.TickRate)
}

// handleTick steps the game by the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	// lastTick advances even while a notice is open, so the first step
	// after dismissing it does not replay the time spent reading.
	elapsed := now.Sub(m.lastTick)
	m.lastTick = now
	elapsed = max(0, min(elapsed, maxDelta))

	if len(m.notices) > 0 {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, elapsed.Seconds())
	m.gameState = result.State
	for _, n := range result.Notices {
		m.logger.Info("notice", "title", n.Title, "score", m.gameState.Score)
	}
	m.notices = append(m.notices, result.Notices...)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// render draws the game and any open notice into the screen buffer.
func (m *Model) render() {
	m.game.Render(m.screen)
	if len(m.notices) > 0 {
		drawNotice(m.screen, m.notices[0])
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		loaded, total := m.cache.Progress()
		return RenderLoading(m.game.Title(), loaded, total, m.config.ScreenW, m.config.ScreenH)
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cache *resources.Cache, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cache, cfg, logger)
	defer model.cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
