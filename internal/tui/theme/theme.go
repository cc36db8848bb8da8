// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme. The default "grip" theme mirrors
// the event platform's purple-on-white design system.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Cards, form panels
	BgSelection string `toml:"bg_selection"` // Cursor row
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Secondary text, unset rows
	Accent      string `toml:"accent"`       // Purple: titles, matched runs, highlighted values
	AccentSoft  string `toml:"accent_soft"`  // Matched run background
	Unset       string `toml:"unset"`        // Unset run marker
	UnsetSoft   string `toml:"unset_soft"`   // Unset run background
	Warning     string `toml:"warning"`      // Move mode, destructive hints

	// Form / toast palette (falls back to base colors when unset)
	FormBorder   string `toml:"form_border"`
	TextOnAccent string `toml:"text_on_accent"`
	ToastBg      string `toml:"toast_bg"`
	ToastFg      string `toml:"toast_fg"`
}

// Load loads a theme by name from embedded files.
// Falls back to grip if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "grip"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "grip" {
			return Load("grip")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.FormBorder == "" {
		t.FormBorder = t.Accent
	}
	if t.TextOnAccent == "" {
		t.TextOnAccent = t.Bg
	}
	if t.ToastBg == "" {
		t.ToastBg = t.Fg
	}
	if t.ToastFg == "" {
		t.ToastFg = t.Bg
	}
	if t.AccentSoft == "" {
		t.AccentSoft = t.BgHighlight
	}
	if t.UnsetSoft == "" {
		t.UnsetSoft = t.BgHighlight
	}
	if t.Unset == "" {
		t.Unset = t.FgMuted
	}
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"grip", "mocha", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
