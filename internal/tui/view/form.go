package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormRow is one field of the inline rule form. Selector fields carry
// their rendered value; text fields carry the text input's view.
type FormRow struct {
	Label    string
	Value    string
	Focused  bool
	Selector bool
}

// FormModel holds everything needed to render the rule form card.
type FormModel struct {
	Title   string
	Rows    []FormRow
	Preview string // natural-language reading of the draft
	Width   int

	CardStyle    lipgloss.Style
	TitleStyle   lipgloss.Style
	LabelStyle   lipgloss.Style
	ValueStyle   lipgloss.Style
	FocusStyle   lipgloss.Style
	HintStyle    lipgloss.Style
	PreviewStyle lipgloss.Style
}

// RenderForm renders the inline rule form as a bordered card.
func RenderForm(m FormModel) string {
	var b strings.Builder
	b.WriteString(m.TitleStyle.Render(m.Title))
	b.WriteString("\n")

	for _, row := range m.Rows {
		label := m.LabelStyle.Render(padLabel(row.Label))
		value := row.Value
		if row.Selector {
			if row.Focused {
				value = m.FocusStyle.Render(" ◂ " + row.Value + " ▸ ")
			} else {
				value = m.ValueStyle.Render("   " + row.Value)
			}
		}
		b.WriteString(label + value)
		b.WriteString("\n")
	}

	if m.Preview != "" {
		b.WriteString(m.PreviewStyle.Render(m.Preview))
		b.WriteString("\n")
	}
	b.WriteString(m.HintStyle.Render("enter save · esc cancel · tab next field"))

	return m.CardStyle.Width(m.Width).Render(b.String())
}

func padLabel(s string) string {
	const w = 10
	if len(s) >= w {
		return s + " "
	}
	return s + strings.Repeat(" ", w-len(s))
}
