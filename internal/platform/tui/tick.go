// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/resources"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// loadingTickMsg refreshes the loading screen while sprites are pending.
type loadingTickMsg time.Time

// assetsReadyMsg is sent once every queued sprite has loaded.
type assetsReadyMsg struct {
	err error
}

// loadingRefresh is how often the loading screen redraws.
const loadingRefresh = 100 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func loadingTickCmd() tea.Cmd {
	return tea.Tick(loadingRefresh, func(t time.Time) tea.Msg {
		return loadingTickMsg(t)
	})
}

// waitAssetsCmd blocks on the cache's ready gate. A sprite that never
// loads keeps the program on the loading screen until ctx is done.
func waitAssetsCmd(ctx context.Context, cache *resources.Cache) tea.Cmd {
	return func() tea.Msg {
		return assetsReadyMsg{err: cache.WaitReady(ctx)}
	}
}
