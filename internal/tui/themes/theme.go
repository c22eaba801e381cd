// Package themes holds the colour schemes of the dashboard.
package themes

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
}

func build(name string, primary, secondary, muted, border, fg, success, errColor lipgloss.Color) Theme {
	return Theme{
		Name:       name,
		Primary:    primary,
		Secondary:  secondary,
		Muted:      muted,
		Border:     border,
		Foreground: fg,
		Success:    success,
		Error:      errColor,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			Background(primary).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		StatusError: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

// Default is the default theme.
var Default = build("default",
	lipgloss.Color("#C08497"),
	lipgloss.Color("#F7AF9D"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#FAFAFA"),
	lipgloss.Color("#10B981"),
	lipgloss.Color("#EF4444"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build("catppuccin-mocha",
	lipgloss.Color("#CBA6F7"),
	lipgloss.Color("#F5C2E7"),
	lipgloss.Color("#6C7086"),
	lipgloss.Color("#45475A"),
	lipgloss.Color("#CDD6F4"),
	lipgloss.Color("#A6E3A1"),
	lipgloss.Color("#F38BA8"),
)

var registry = map[string]Theme{
	Default.Name:         Default,
	CatppuccinMocha.Name: CatppuccinMocha,
}

// ByName looks a theme up case-insensitively.
func ByName(name string) (Theme, bool) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Names lists the available themes.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
