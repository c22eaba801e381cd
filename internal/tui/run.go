package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx ends.
func Run(ctx context.Context, ctrl Controller, opts ...Option) error {
	if ctrl == nil {
		return fmt.Errorf("controller is required")
	}

	p := tea.NewProgram(New(ctrl, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
