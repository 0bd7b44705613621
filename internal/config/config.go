package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config is the persistent application configuration
type Config struct {
	// Locale selects the language patterns are presented in ("en", "es", ...)
	Locale string `json:"locale"`

	// Refresh cadence for the fetch/evaluate cycle
	RefreshInterval Duration `json:"refresh_interval"`

	// WindowCycles is how many recent cycles count toward pattern activation
	WindowCycles int `json:"window_cycles"`

	// EvictAfterCycles is how long an unseen topic stays in the tracker
	EvictAfterCycles int `json:"evict_after_cycles"`

	// CatalogPath is an optional YAML overlay for topics/patterns/weights
	CatalogPath string `json:"catalog_path,omitempty"`

	// DBPath overrides the default database location
	DBPath string `json:"db_path,omitempty"`

	// Sources are the feeds to poll
	Sources []SourceConfig `json:"sources"`
}

// SourceConfig identifies one feed to poll
type SourceConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Duration wraps time.Duration so it round-trips through JSON as a
// human-readable string ("5m", "90s").
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Locale:           "en",
		RefreshInterval:  Duration(5 * time.Minute),
		WindowCycles:     3,
		EvictAfterCycles: 12,
		Sources: []SourceConfig{
			{Name: "Reuters World", URL: "https://feeds.reuters.com/reuters/worldNews"},
			{Name: "AP News Wire", URL: "https://rsshub.app/apnews/topics/apf-topnews"},
			{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml"},
			{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
			{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sentinel", "config.json")
}

// DefaultDBPath returns where the database lives unless overridden
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sentinel", "sentinel.db")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	cfg.applyFallbacks()
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// applyFallbacks fills zero values left by a partial config file.
func (c *Config) applyFallbacks() {
	def := DefaultConfig()
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = def.RefreshInterval
	}
	if c.WindowCycles <= 0 {
		c.WindowCycles = def.WindowCycles
	}
	if c.EvictAfterCycles <= 0 {
		c.EvictAfterCycles = def.EvictAfterCycles
	}
	if len(c.Sources) == 0 {
		c.Sources = def.Sources
	}
}
