package tui

import (
	"time"

	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/Veraticus/wardrobe/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme          themes.Theme
	Group          string
	Width          int
	Height         int
	RequestTimeout time.Duration
	ShowHelp       bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:          themes.Default,
		Group:          style.GroupAll,
		Width:          80,
		Height:         24,
		RequestTimeout: 30 * time.Second,
		ShowHelp:       false,
	}
}

// WithTheme sets the colour theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithGroup sets the initial wardrobe group filter.
func WithGroup(group string) Option {
	return func(c *Config) {
		if group != "" {
			c.Group = group
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRequestTimeout bounds every backend call made from the dashboard.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.RequestTimeout = d
		}
	}
}

// WithHelp starts the dashboard with the full help expanded.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
