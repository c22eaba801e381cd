package viewmodel

import (
	"strings"

	"github.com/Veraticus/wardrobe/internal/style"
)

// TruncateString truncates s to maxLen runes, ending with an ellipsis when cut.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// ScoreBar renders a clamped fraction as a text bar of the given width.
func ScoreBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(style.ClampFraction(fraction)*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
