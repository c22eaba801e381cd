package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 4 * time.Second

// refresh reloads the controller snapshot.
func (m Model) refresh() tea.Cmd {
	ctrl, timeout := m.controller, m.config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return refreshedMsg{err: ctrl.Refresh(ctx)}
	}
}

// generate asks the backend for a fresh set of recommendations.
func (m Model) generate() tea.Cmd {
	ctrl, timeout := m.controller, m.config.RequestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		results, err := ctrl.GenerateRecommendations(ctx)
		return generatedMsg{count: len(results), err: err}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
