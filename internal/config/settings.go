package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// EnvAPIURL overrides Settings.APIURL when set.
const EnvAPIURL = "STUDYCAFE_API_URL"

// DefaultAPIURL is used when neither the config file nor the environment name a server.
const DefaultAPIURL = "http://localhost:8001"

// Settings holds all configuration options.
type Settings struct {
	// API settings
	APIURL                string `toml:"api_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"` // 0 disables the timeout
	UserAgent             string `toml:"user_agent"`

	// Directory settings
	Locale string `toml:"locale"` // BCP 47 tag used for sorting artist names

	// Gallery settings
	ShowThumbnails      bool `toml:"show_thumbnails"`
	ThumbnailWidth      int  `toml:"thumbnail_width"`
	MaxConcurrentImages int  `toml:"max_concurrent_images"`

	// Log settings
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	LogFormat string `toml:"log_format"` // text, json
	LogFile   string `toml:"log_file"`   // empty discards logs in the TUI
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		APIURL:                DefaultAPIURL,
		RequestTimeoutSeconds: 60,
		UserAgent:             "studycafe-tui",

		Locale: "ko",

		ShowThumbnails:      true,
		ThumbnailWidth:      32,
		MaxConcurrentImages: 3,

		LogLevel:  "info",
		LogFormat: "text",
	}
}

// DefaultPath returns ~/.config/studycafe/config.toml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "studycafe", "config.toml"), nil
}

// Load reads settings from a TOML file.
//
// A missing file is not an error; defaults are returned instead.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	settings.normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a TOML file.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv applies environment overrides using lookup (usually os.LookupEnv).
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(value) != "" {
		s.APIURL = value
	}
	s.normalize()
}

// Validate reports the first invalid setting.
func (s *Settings) Validate() error {
	u, err := url.Parse(s.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url: missing host")
	}
	if s.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds: must not be negative")
	}
	if _, err := language.Parse(s.Locale); err != nil {
		return fmt.Errorf("locale: %w", err)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", s.LogFormat)
	}
	return nil
}

// RequestTimeout returns the per-request timeout; zero means none.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// LanguageTag returns the parsed Locale, falling back to language.Korean.
func (s *Settings) LanguageTag() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Korean
	}
	return tag
}

func (s *Settings) normalize() {
	s.APIURL = strings.TrimRight(strings.TrimSpace(s.APIURL), "/")
	if s.APIURL == "" {
		s.APIURL = DefaultAPIURL
	}
	if strings.TrimSpace(s.Locale) == "" {
		s.Locale = "ko"
	}
	if s.ThumbnailWidth <= 0 {
		s.ThumbnailWidth = 32
	}
	if s.MaxConcurrentImages <= 0 {
		s.MaxConcurrentImages = 1
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.LogFormat = strings.ToLower(strings.TrimSpace(s.LogFormat))
	if s.LogFormat == "" {
		s.LogFormat = "text"
	}
}
