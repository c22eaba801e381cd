package tui

import (
	"strings"

	"github.com/Veraticus/wardrobe/internal/cli"
	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/charmbracelet/lipgloss"
)

// View renders the dashboard.
func (m Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	body := clipLines(m.renderBody(), bodyHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m Model) renderHeader() string {
	theme := m.config.Theme

	title := theme.Title.Render("wardrobe")
	if m.dashboard.SignedIn {
		title += theme.Subtitle.Render("  " + m.dashboard.Profile.Username)
	} else {
		title += theme.Subtitle.Render("  signed out")
	}

	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, theme.ActiveTab.Render(t.String()))
			continue
		}
		tabs = append(tabs, theme.Tab.Render(t.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m Model) renderBody() string {
	d := m.dashboard
	switch m.tab {
	case TabProfile:
		return cli.RenderProfile(d.Profile)
	case TabWardrobe:
		if !d.SignedIn {
			return cli.RenderWardrobe(d.Wardrobe)
		}
		filter := m.config.Theme.Subtitle.Render("Filter: " + style.GroupLabel(m.group) + "  (f to change)")
		return strings.Join([]string{filter, cli.RenderStats(d.Wardrobe), cli.RenderWardrobe(d.Wardrobe)}, "\n\n")
	case TabRecommendations:
		return strings.Join([]string{
			cli.RenderRecommendations(d.Recommendations),
			cli.FormatTitle("Outfits") + "\n" + cli.RenderOutfits(d.Outfits),
		}, "\n\n")
	case TabTips:
		return cli.RenderTips(d.Tips)
	default:
		return ""
	}
}

func (m Model) renderFooter() string {
	theme := m.config.Theme

	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " " + theme.StatusPending.Render(m.status)
	case m.statusErr:
		status = theme.StatusError.Render(m.status)
	case m.status != "":
		status = theme.StatusSuccess.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}

// clipLines keeps at most n lines of s; n <= 0 leaves s untouched.
func clipLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
