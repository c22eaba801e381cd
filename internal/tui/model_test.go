package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/page"
	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/Veraticus/wardrobe/internal/testutil"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubController struct {
	user        *model.UserProfile
	refreshErr  error
	generateErr error
	items       []model.WardrobeItem
	results     []model.RecommendationResult
	groups      []string
	refreshes   int
	mu          sync.Mutex
}

func (s *stubController) Refresh(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
	return s.refreshErr
}

func (s *stubController) GenerateRecommendations(context.Context) ([]model.RecommendationResult, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.results, nil
}

func (s *stubController) Dashboard(group string) viewmodel.Dashboard {
	s.mu.Lock()
	s.groups = append(s.groups, group)
	s.mu.Unlock()
	return viewmodel.NewDashboard(viewmodel.Input{
		User:            s.user,
		Group:           group,
		Wardrobe:        s.items,
		Recommendations: s.results,
	})
}

func signedInController() *stubController {
	items := testutil.NewItemBuilder().WithCapsule().Build()
	return &stubController{
		user:    testutil.Profile("alice"),
		items:   items,
		results: testutil.Results(items[:2], 1.4, 0.5),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func loaded(t *testing.T, ctrl Controller, opts ...Option) Model {
	t.Helper()
	m, _ := update(t, New(ctrl, opts...), refreshedMsg{})
	return m
}

func TestNew(t *testing.T) {
	ctrl := signedInController()
	m := New(ctrl)

	assert.True(t, m.Loading())
	assert.Equal(t, TabProfile, m.ActiveTab())
	assert.Equal(t, style.GroupAll, m.Group())
	assert.Equal(t, []string{style.GroupAll}, ctrl.groups)
	assert.NotNil(t, m.Init())
}

func TestTabNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want Tab
	}{
		{"next", []tea.KeyMsg{{Type: tea.KeyTab}}, TabWardrobe},
		{"next wraps", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab}}, TabProfile},
		{"previous wraps", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, TabTips},
		{"vim keys", []tea.KeyMsg{keyRunes("l"), keyRunes("l"), keyRunes("h")}, TabWardrobe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t, signedInController())
			for _, k := range tt.keys {
				m, _ = update(t, m, k)
			}
			assert.Equal(t, tt.want, m.ActiveTab())
		})
	}
}

func TestFilterCyclesGroups(t *testing.T) {
	ctrl := signedInController()
	m := loaded(t, ctrl)

	groups := style.Groups()
	for i := 1; i <= len(groups); i++ {
		m, _ = update(t, m, keyRunes("f"))
		assert.Equal(t, groups[i%len(groups)], m.Group())
		assert.Equal(t, TabWardrobe, m.ActiveTab())
	}
	assert.Equal(t, style.GroupAll, ctrl.groups[len(ctrl.groups)-1])
}

func TestRefresh(t *testing.T) {
	t.Run("ignored while loading", func(t *testing.T) {
		m := New(signedInController())
		_, cmd := update(t, m, keyRunes("r"))
		assert.Nil(t, cmd)
	})

	t.Run("runs refresh", func(t *testing.T) {
		ctrl := signedInController()
		m := loaded(t, ctrl)

		m, cmd := update(t, m, keyRunes("r"))
		require.NotNil(t, cmd)
		assert.True(t, m.Loading())
		assert.Equal(t, "Refreshing…", m.Status())

		msg := m.refresh()()
		assert.Equal(t, refreshedMsg{}, msg)
		assert.Equal(t, 1, ctrl.refreshes)

		m, cmd = update(t, m, msg)
		assert.False(t, m.Loading())
		assert.Equal(t, "Refreshed", m.Status())
		assert.NotNil(t, cmd)
	})

	t.Run("failure shows status", func(t *testing.T) {
		ctrl := signedInController()
		ctrl.refreshErr = errors.New("connection refused")
		m := New(ctrl)

		m, _ = update(t, m, m.refresh()())
		assert.False(t, m.Loading())
		assert.Equal(t, "Refresh failed: connection refused", m.Status())
		assert.Contains(t, m.View(), "Refresh failed")
	})
}

func TestGenerate(t *testing.T) {
	t.Run("success switches to recommendations", func(t *testing.T) {
		ctrl := signedInController()
		m := loaded(t, ctrl)

		m, cmd := update(t, m, keyRunes("g"))
		require.NotNil(t, cmd)
		assert.True(t, m.Loading())

		msg := m.generate()()
		assert.Equal(t, generatedMsg{count: 2}, msg)

		m, _ = update(t, m, msg)
		assert.Equal(t, TabRecommendations, m.ActiveTab())
		assert.Equal(t, "Generated 2 recommendations", m.Status())
		assert.Contains(t, m.View(), "White tee")
	})

	t.Run("login required", func(t *testing.T) {
		ctrl := &stubController{generateErr: page.ErrLoginRequired}
		m := loaded(t, ctrl)

		m, _ = update(t, m, m.generate()())
		assert.Equal(t, TabProfile, m.ActiveTab())
		assert.Equal(t, "Log in to generate recommendations", m.Status())
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := signedInController()
		ctrl.generateErr = errors.New("boom")
		m := loaded(t, ctrl)

		m, _ = update(t, m, m.generate()())
		assert.Equal(t, "Generation failed: boom", m.Status())
	})
}

func TestStatusClear(t *testing.T) {
	m := loaded(t, signedInController())
	require.Equal(t, "Refreshed", m.Status())

	stale, _ := update(t, m, statusClearMsg{seq: m.statusSeq - 1})
	assert.Equal(t, "Refreshed", stale.Status())

	cleared, _ := update(t, m, statusClearMsg{seq: m.statusSeq})
	assert.Empty(t, cleared.Status())
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, loaded(t, signedInController()), k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		m := loaded(t, &stubController{})
		view := m.View()
		assert.Contains(t, view, "signed out")
		assert.Contains(t, view, viewmodel.SignedOutProfile)
	})

	t.Run("tabs", func(t *testing.T) {
		m := loaded(t, signedInController(), WithSize(120, 200))
		assert.Contains(t, m.View(), "alice")

		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Contains(t, m.View(), "Filter: All")

		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Contains(t, m.View(), style.TitleSeason)
	})

	t.Run("window size", func(t *testing.T) {
		m, cmd := update(t, New(signedInController()), tea.WindowSizeMsg{Width: 100, Height: 40})
		assert.Nil(t, cmd)
		assert.Equal(t, 100, m.help.Width)
	})
}

func TestClipLines(t *testing.T) {
	assert.Equal(t, "a\nb", clipLines("a\nb\nc", 2))
	assert.Equal(t, "a\nb\nc", clipLines("a\nb\nc", 0))
	assert.Equal(t, "a", clipLines("a", 5))
}
