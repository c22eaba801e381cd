package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/wardrobe/internal/common"
)

// Configuration keys.
const (
	KeyServerURL     = "server.url"
	KeyServerTimeout = "server.timeout"
	KeySessionPath   = "session.path"
	KeyUITheme       = "ui.theme"
	KeyWebAddr       = "web.addr"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
)

// Settings holds the resolved client configuration.
type Settings struct {
	ServerURL   string
	SessionPath string
	Theme       string
	WebAddr     string
	LogLevel    string
	LogFormat   string
	Timeout     time.Duration
}

// SetDefaults registers default values for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerURL, "http://localhost:8000")
	v.SetDefault(KeyServerTimeout, 30*time.Second)
	v.SetDefault(KeySessionPath, DefaultSessionPath())
	v.SetDefault(KeyUITheme, "default")
	v.SetDefault(KeyWebAddr, "127.0.0.1:8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load reads Settings from v and validates them.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		ServerURL:   strings.TrimRight(v.GetString(KeyServerURL), "/"),
		Timeout:     v.GetDuration(KeyServerTimeout),
		SessionPath: ExpandPath(v.GetString(KeySessionPath)),
		Theme:       v.GetString(KeyUITheme),
		WebAddr:     v.GetString(KeyWebAddr),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the settings can be used to reach a backend.
func (s *Settings) Validate() error {
	if s.ServerURL == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyServerURL)
	}

	u, err := url.Parse(s.ServerURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", common.ErrInvalidConfig, KeyServerURL, s.ServerURL)
	}

	if s.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyServerTimeout)
	}

	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s must be console or json", common.ErrInvalidConfig, KeyLogFormat)
	}

	return nil
}

// ServerHost returns the host:port part of the server URL.
func (s *Settings) ServerHost() string {
	u, err := url.Parse(s.ServerURL)
	if err != nil {
		return ""
	}
	return u.Host
}
