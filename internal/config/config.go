// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ireyes/slotprio/internal/event"
)

// Config holds the application configuration.
type Config struct {
	Event   EventConfig   `toml:"event"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// EventConfig describes the event whose slots are being prioritised: its
// days and the per-location slot generation table.
type EventConfig struct {
	Name  string             `toml:"name"`
	Days  []DayConfig        `toml:"days"`
	Slots []event.SlotConfig `toml:"slots"`
}

// DayConfig is one event day.
type DayConfig struct {
	Label string `toml:"label"` // e.g. "Monday 20 Jan"
	Short string `toml:"short"` // e.g. "Mon 20 Jan"
	Date  string `toml:"date"`  // ISO date
}

// StorageConfig holds rule persistence settings. An empty DBPath keeps
// rules in memory for the session.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "grip", "mocha", "latte"
}

// Default returns the default configuration: the canonical three-day,
// seven-location catalogue.
func Default() *Config {
	return &Config{
		Event: EventConfig{
			Name: "TechCrunch Slot Priorities",
			Days: []DayConfig{
				{Label: "Monday 20 Jan", Short: "Mon 20 Jan", Date: "2028-01-20"},
				{Label: "Tuesday 21 Jan", Short: "Tue 21 Jan", Date: "2028-01-21"},
				{Label: "Wednesday 22 Jan", Short: "Wed 22 Jan", Date: "2028-01-22"},
			},
			Slots: []event.SlotConfig{
				{Location: "Booth A1", StartHour: 9, StartMinute: 0, Duration: 12, Gap: 3, Count: 8},
				{Location: "Booth A2", StartHour: 9, StartMinute: 0, Duration: 12, Gap: 3, Count: 8},
				{Location: "Booth B1", StartHour: 9, StartMinute: 30, Duration: 15, Gap: 5, Count: 6},
				{Location: "Table 1", StartHour: 10, StartMinute: 0, Duration: 20, Gap: 5, Count: 4},
				{Location: "Table 2", StartHour: 10, StartMinute: 0, Duration: 20, Gap: 5, Count: 4},
				{Location: "Meeting Room 1", StartHour: 9, StartMinute: 0, Duration: 30, Gap: 10, Count: 3},
				{Location: "Public Lounge", StartHour: 13, StartMinute: 0, Duration: 15, Gap: 5, Count: 4},
			},
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "grip",
		},
	}
}

// Days returns the configured event days as domain values.
func (c *Config) Days() []event.Day {
	days := make([]event.Day, len(c.Event.Days))
	for i, d := range c.Event.Days {
		days[i] = event.Day{Label: d.Label, Short: d.Short, Date: d.Date}
	}
	return days
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "slotprio.db"
	}
	return filepath.Join(home, ".local", "share", "slotprio", "slotprio.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slotprio", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	// A file that configures the event replaces the default catalogue
	// wholesale rather than appending to it.
	var overlay Config
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if overlay.Event.Name != "" {
		cfg.Event.Name = overlay.Event.Name
	}
	if len(overlay.Event.Days) > 0 {
		cfg.Event.Days = overlay.Event.Days
	}
	if len(overlay.Event.Slots) > 0 {
		cfg.Event.Slots = overlay.Event.Slots
	}
	if overlay.Storage.DBPath != "" {
		cfg.Storage.DBPath = overlay.Storage.DBPath
	}
	if overlay.UI.Theme != "" {
		cfg.UI.Theme = overlay.UI.Theme
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLOTPRIO_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SLOTPRIO_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Save writes the configuration to the default path, creating the
// directory if needed.
func (c *Config) Save() error {
	path := DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Event.Days) == 0 {
		return errors.New("at least one event day must be configured")
	}
	seen := make(map[string]bool, len(c.Event.Days))
	for _, d := range c.Event.Days {
		if d.Label == "" {
			return errors.New("event day label cannot be empty")
		}
		if seen[d.Label] {
			return fmt.Errorf("duplicate event day: %s", d.Label)
		}
		seen[d.Label] = true
	}

	if len(c.Event.Slots) == 0 {
		return errors.New("at least one slot location must be configured")
	}
	for _, s := range c.Event.Slots {
		if s.Location == "" {
			return errors.New("slot location cannot be empty")
		}
		if s.StartHour < 0 || s.StartHour > 23 {
			return fmt.Errorf("slot %s: start_hour out of range", s.Location)
		}
		if s.StartMinute < 0 || s.StartMinute > 59 {
			return fmt.Errorf("slot %s: start_minute out of range", s.Location)
		}
		if s.Duration <= 0 {
			return fmt.Errorf("slot %s: duration must be positive", s.Location)
		}
		if s.Gap < 0 {
			return fmt.Errorf("slot %s: gap cannot be negative", s.Location)
		}
		if s.Count <= 0 {
			return fmt.Errorf("slot %s: count must be positive", s.Location)
		}
	}

	return nil
}
