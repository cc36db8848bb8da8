package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel holds the header strings and styles.
type HeaderModel struct {
	Title    string
	Event    string
	Subtitle string
	Width    int

	TitleStyle    lipgloss.Style
	EventStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
}

// RenderHeader renders the two-line header plus a spacer line.
func RenderHeader(m HeaderModel) string {
	top := m.TitleStyle.Render(m.Title) + "  " + m.EventStyle.Render(m.Event)
	return TruncateLine(top, m.Width) + "\n" +
		TruncateLine(m.SubtitleStyle.Render(m.Subtitle), m.Width) + "\n"
}

// FooterModel holds the footer strings and styles.
type FooterModel struct {
	Help  string
	Toast string
	Width int

	HelpStyle  lipgloss.Style
	ToastStyle lipgloss.Style
}

// RenderFooter renders the help line, with the toast overriding the right
// edge while active.
func RenderFooter(m FooterModel) string {
	help := TruncateLine(m.HelpStyle.Render(m.Help), m.Width)
	if m.Toast == "" {
		return help
	}
	toast := m.ToastStyle.Render(m.Toast)
	gap := m.Width - lipgloss.Width(help) - lipgloss.Width(toast)
	if gap < 1 {
		return TruncateLine(toast, m.Width)
	}
	return help + strings.Repeat(" ", gap) + toast
}
