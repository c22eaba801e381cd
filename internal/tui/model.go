// Package tui implements the interactive wardrobe dashboard.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/page"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the part of page.Controller the dashboard drives.
type Controller interface {
	Refresh(ctx context.Context) error
	GenerateRecommendations(ctx context.Context) ([]model.RecommendationResult, error)
	Dashboard(group string) viewmodel.Dashboard
}

// Tab identifies a dashboard section.
type Tab int

// Dashboard tabs in display order.
const (
	TabProfile Tab = iota
	TabWardrobe
	TabRecommendations
	TabTips
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabProfile:
		return "Profile"
	case TabWardrobe:
		return "Wardrobe"
	case TabRecommendations:
		return "Recommendations"
	case TabTips:
		return "Tips"
	default:
		return "Unknown"
	}
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	controller Controller
	keys       KeyMap
	help       help.Model
	spinner    spinner.Model
	status     string
	group      string
	dashboard  viewmodel.Dashboard
	config     Config
	tab        Tab
	statusSeq  int
	width      int
	height     int
	loading    bool
	statusErr  bool
}

// New creates a dashboard model driven by ctrl.
func New(ctrl Controller, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Theme.Title

	h := help.New()
	h.ShowAll = cfg.ShowHelp
	h.Width = cfg.Width

	return Model{
		controller: ctrl,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		spinner:    sp,
		group:      cfg.Group,
		dashboard:  ctrl.Dashboard(cfg.Group),
		width:      cfg.Width,
		height:     cfg.Height,
		loading:    true,
		status:     "Loading…",
	}
}

// Init starts the first refresh.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case refreshedMsg:
		m.loading = false
		m.dashboard = m.controller.Dashboard(m.group)
		if msg.err != nil {
			return m, m.setStatus("Refresh failed: "+common.UserMessage(msg.err), true)
		}
		return m, m.setStatus("Refreshed", false)

	case generatedMsg:
		m.loading = false
		m.dashboard = m.controller.Dashboard(m.group)
		switch {
		case errors.Is(msg.err, page.ErrLoginRequired):
			return m, m.setStatus("Log in to generate recommendations", true)
		case msg.err != nil:
			return m, m.setStatus("Generation failed: "+common.UserMessage(msg.err), true)
		}
		m.tab = TabRecommendations
		return m, m.setStatus(fmt.Sprintf("Generated %d recommendations", msg.count), false)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount

	case key.Matches(msg, m.keys.Filter):
		m.group = viewmodel.NextGroup(m.group)
		m.tab = TabWardrobe
		m.dashboard = m.controller.Dashboard(m.group)

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status, m.statusErr = "Refreshing…", false
		return m, tea.Batch(m.spinner.Tick, m.refresh())

	case key.Matches(msg, m.keys.Generate):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status, m.statusErr = "Generating recommendations…", false
		return m, tea.Batch(m.spinner.Tick, m.generate())
	}
	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return clearStatusAfter(m.statusSeq)
}

// ActiveTab returns the selected tab.
func (m Model) ActiveTab() Tab {
	return m.tab
}

// Group returns the active wardrobe group filter.
func (m Model) Group() string {
	return m.group
}

// Loading reports whether a backend call is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}
