// Package config loads the client's settings and resolves its file locations.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and any $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// ConfigDir returns the directory holding config.yaml and the session database.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wardrobe")
	}
	return ExpandPath("~/.config/wardrobe")
}

// DefaultSessionPath returns the default location of the session database.
func DefaultSessionPath() string {
	return filepath.Join(ConfigDir(), "session.db")
}
