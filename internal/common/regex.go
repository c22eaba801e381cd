package common

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// IsHexColor reports whether s is a CSS-style hex colour such as #fff or #1E3A8A.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
