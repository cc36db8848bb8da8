// Package tui provides the terminal user interface for slotprio.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ireyes/slotprio/internal/tui/theme"
)

// Minimum width of the live preview pane; the rule list takes the rest.
const previewPaneWidth = 40

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg     lipgloss.Color
	colorFg     lipgloss.Color
	colorMuted  lipgloss.Color
	colorAccent lipgloss.Color

	// Header
	TitleStyle    lipgloss.Style
	EventStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style

	// Rule list
	RuleBadgeStyle    lipgloss.Style // priority pill
	RuleDescStyle     lipgloss.Style
	RuleValueStyle    lipgloss.Style // highlighted phrase values
	RuleMetaStyle     lipgloss.Style // "N slots matched"
	RuleCursorStyle   lipgloss.Style // selected row marker
	RuleMovingStyle   lipgloss.Style // the grabbed rule in move mode
	RuleDropHintStyle lipgloss.Style // hover position in move mode
	EmptyTitleStyle   lipgloss.Style
	EmptySubStyle     lipgloss.Style

	// Rule form
	FormStyle        lipgloss.Style // bordered card
	FormTitleStyle   lipgloss.Style
	FormLabelStyle   lipgloss.Style
	FormValueStyle   lipgloss.Style
	FormFocusStyle   lipgloss.Style
	FormHintStyle    lipgloss.Style
	FormPreviewStyle lipgloss.Style // natural-language draft preview

	// Live preview pane
	PreviewTitleStyle lipgloss.Style
	SlotCountStyle    lipgloss.Style
	StatStyle         lipgloss.Style
	StatUnsetStyle    lipgloss.Style
	DayLabelStyle     lipgloss.Style
	RunMatchedStyle   lipgloss.Style
	RunUnsetStyle     lipgloss.Style
	RunBadgeStyle     lipgloss.Style
	RunUnsetBadge     lipgloss.Style
	NoMatchStyle      lipgloss.Style

	// Footer
	HelpStyle   lipgloss.Style
	StatusStyle lipgloss.Style
	ToastStyle  lipgloss.Style

	// Text input styles
	InputTextStyle   lipgloss.Style
	InputCursorStyle lipgloss.Style
	PlaceholderStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	bg := lipgloss.Color(t.Bg)
	fg := lipgloss.Color(t.Fg)
	muted := lipgloss.Color(t.FgMuted)
	accent := lipgloss.Color(t.Accent)
	accentSoft := lipgloss.Color(t.AccentSoft)
	unset := lipgloss.Color(t.Unset)
	unsetSoft := lipgloss.Color(t.UnsetSoft)
	warning := lipgloss.Color(t.Warning)
	onAccent := lipgloss.Color(t.TextOnAccent)

	s := &Styles{
		colorBg:     bg,
		colorFg:     fg,
		colorMuted:  muted,
		colorAccent: accent,

		TitleStyle:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		EventStyle:    lipgloss.NewStyle().Foreground(fg).Bold(true),
		SubtitleStyle: lipgloss.NewStyle().Foreground(muted),

		RuleBadgeStyle:    lipgloss.NewStyle().Foreground(accent).Background(accentSoft).Padding(0, 1),
		RuleDescStyle:     lipgloss.NewStyle().Foreground(fg),
		RuleValueStyle:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		RuleMetaStyle:     lipgloss.NewStyle().Foreground(muted),
		RuleCursorStyle:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		RuleMovingStyle:   lipgloss.NewStyle().Foreground(warning).Bold(true),
		RuleDropHintStyle: lipgloss.NewStyle().Foreground(warning),
		EmptyTitleStyle:   lipgloss.NewStyle().Foreground(fg).Bold(true),
		EmptySubStyle:     lipgloss.NewStyle().Foreground(muted),

		FormStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.FormBorder)).
			Padding(0, 1),
		FormTitleStyle:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		FormLabelStyle:   lipgloss.NewStyle().Foreground(muted),
		FormValueStyle:   lipgloss.NewStyle().Foreground(fg),
		FormFocusStyle:   lipgloss.NewStyle().Foreground(onAccent).Background(accent),
		FormHintStyle:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		FormPreviewStyle: lipgloss.NewStyle().Foreground(fg).Background(lipgloss.Color(t.BgHighlight)).Padding(0, 1),

		PreviewTitleStyle: lipgloss.NewStyle().Foreground(fg).Bold(true),
		SlotCountStyle:    lipgloss.NewStyle().Foreground(muted),
		StatStyle:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		StatUnsetStyle:    lipgloss.NewStyle().Foreground(muted).Bold(true),
		DayLabelStyle:     lipgloss.NewStyle().Foreground(fg).Bold(true),
		RunMatchedStyle:   lipgloss.NewStyle().Foreground(accent).Background(accentSoft),
		RunUnsetStyle:     lipgloss.NewStyle().Foreground(unset).Background(unsetSoft),
		RunBadgeStyle:     lipgloss.NewStyle().Foreground(onAccent).Background(accent).Padding(0, 1),
		RunUnsetBadge:     lipgloss.NewStyle().Foreground(unsetSoft).Background(unset).Padding(0, 1),
		NoMatchStyle:      lipgloss.NewStyle().Foreground(muted).Italic(true),

		HelpStyle:   lipgloss.NewStyle().Foreground(muted),
		StatusStyle: lipgloss.NewStyle().Foreground(warning),
		ToastStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ToastFg)).
			Background(lipgloss.Color(t.ToastBg)).
			Padding(0, 2).
			Bold(true),

		InputTextStyle:   lipgloss.NewStyle().Foreground(fg),
		InputCursorStyle: lipgloss.NewStyle().Foreground(accent),
		PlaceholderStyle: lipgloss.NewStyle().Foreground(muted),
	}

	return s
}
