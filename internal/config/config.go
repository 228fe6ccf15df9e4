package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds the persisted client settings. Environment variables override
// the file.
type Config struct {
	APIKey   string `json:"api_key" env:"TVDB_API_KEY"`
	Language string `json:"language" env:"TVDB_LANGUAGE"`
	BaseURL  string `json:"base_url" env:"TVDB_BASE_URL"`
	LogLevel string `json:"log_level" env:"TVDB_LOG_LEVEL"`

	// Session logging
	EnableLogging    bool `json:"enable_logging" env:"TVDB_ENABLE_LOGGING"`
	LogRetentionDays int  `json:"log_retention_days"`

	// Response cache and request budget
	CacheEnabled       bool `json:"cache_enabled" env:"TVDB_CACHE_ENABLED"`
	CacheHours         int  `json:"cache_hours"`
	MaxRequests        int  `json:"max_requests"`
	RequestWindowSecs  int  `json:"request_window_secs"`
	BundleCacheMinutes int  `json:"bundle_cache_minutes"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		APIKey:             "",
		Language:           "en",
		BaseURL:            "http://thetvdb.com/api/",
		LogLevel:           "warn",
		EnableLogging:      true,
		LogRetentionDays:   30,
		CacheEnabled:       true,
		CacheHours:         168,
		MaxRequests:        20,
		RequestWindowSecs:  10,
		BundleCacheMinutes: 10,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tvdbxml", "config.json"), nil
}

// Load reads the configuration from disk, fills missing fields with defaults
// and applies environment overrides.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = parse(data)
		if err != nil {
			return nil, err
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse decodes over the defaults so fields missing from the file, including
// the boolean switches, keep their default values.
func parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.LogRetentionDays == 0 {
		cfg.LogRetentionDays = defaults.LogRetentionDays
	}
	if cfg.CacheHours == 0 {
		cfg.CacheHours = defaults.CacheHours
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = defaults.MaxRequests
	}
	if cfg.RequestWindowSecs == 0 {
		cfg.RequestWindowSecs = defaults.RequestWindowSecs
	}
	if cfg.BundleCacheMinutes == 0 {
		cfg.BundleCacheMinutes = defaults.BundleCacheMinutes
	}
	return cfg, nil
}

// normalize reduces Language to the two letter code the catalog uses, so
// "en-US" and "EN" both become "en".
func (cfg *Config) normalize() error {
	lang, err := NormalizeLanguage(cfg.Language)
	if err != nil {
		return err
	}
	cfg.Language = lang
	return nil
}

// NormalizeLanguage validates a BCP 47 tag and returns its base language.
func NormalizeLanguage(s string) (string, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", s, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// CacheTTL is how long fetched responses stay valid.
func (cfg *Config) CacheTTL() time.Duration {
	return time.Duration(cfg.CacheHours) * time.Hour
}

func (cfg *Config) RequestWindow() time.Duration {
	return time.Duration(cfg.RequestWindowSecs) * time.Second
}

func (cfg *Config) BundleTTL() time.Duration {
	return time.Duration(cfg.BundleCacheMinutes) * time.Minute
}

// Save writes the configuration to disk
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
