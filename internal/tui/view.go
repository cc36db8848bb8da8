package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ireyes/slotprio/internal/editor"
	"github.com/ireyes/slotprio/internal/engine"
	"github.com/ireyes/slotprio/internal/rule"
	"github.com/ireyes/slotprio/internal/tui/view"
)

const columnGap = 2

// View renders the TUI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}

	header := view.RenderHeader(m.headerModel())

	leftW := m.width - previewPaneWidth - columnGap
	if leftW < 20 {
		leftW = m.width / 2
	}
	bodyH := m.height - headerHeight - 1

	left := m.renderLeft(leftW)
	right := view.RenderPreview(m.previewModel(previewPaneWidth))

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		view.PadBox(left, leftW+columnGap, bodyH),
		view.PadBox(right, previewPaneWidth, bodyH),
	)

	footer := view.RenderFooter(view.FooterModel{
		Help:       m.helpText(),
		Toast:      m.toast,
		Width:      m.width,
		HelpStyle:  m.styles.HelpStyle,
		ToastStyle: m.styles.ToastStyle,
	})

	return header + "\n" + body + "\n" + footer
}

// renderLeft renders the rules column, with the form card on top while it
// is open.
func (m Model) renderLeft(width int) string {
	list := view.RenderRuleList(m.ruleListModel(width))
	if m.mode != ModeForm {
		return list
	}
	return m.renderForm(width) + "\n" + list
}

// renderForm renders the inline form card for the active draft.
func (m Model) renderForm(width int) string {
	d := m.ed.Draft()
	if d == nil {
		return ""
	}

	title := "New rule"
	if m.ed.State() == editor.StateEditing {
		title = "Edit rule"
	}

	fields := m.form.fields(d)
	rows := make([]view.FormRow, 0, len(fields))
	for i, f := range fields {
		rows = append(rows, m.formRow(d, f, i == m.form.focus))
	}

	formWidth := width - 4
	if formWidth < 24 {
		formWidth = 24
	}
	return view.RenderForm(view.FormModel{
		Title:        title,
		Rows:         rows,
		Preview:      rule.Plain(rule.Describe(d.Rule())),
		Width:        formWidth,
		CardStyle:    m.styles.FormStyle,
		TitleStyle:   m.styles.FormTitleStyle,
		LabelStyle:   m.styles.FormLabelStyle,
		ValueStyle:   m.styles.FormValueStyle,
		FocusStyle:   m.styles.FormFocusStyle,
		HintStyle:    m.styles.FormHintStyle,
		PreviewStyle: m.styles.FormPreviewStyle,
	})
}

func (m Model) formRow(d *editor.Draft, f editor.Field, focused bool) view.FormRow {
	switch f {
	case editor.FieldKind:
		return view.FormRow{Label: "Type", Value: kindLabel(d.Kind), Focused: focused, Selector: true}
	case editor.FieldDay:
		return view.FormRow{Label: "Day", Value: d.Day, Focused: focused, Selector: true}
	case editor.FieldLocation:
		return view.FormRow{Label: "Location", Value: d.Location, Focused: focused, Selector: true}
	case editor.FieldTime:
		return view.FormRow{Label: "Time", Value: m.form.time.View(), Focused: focused}
	case editor.FieldTimeFrom:
		return view.FormRow{Label: "From", Value: m.form.timeFrom.View(), Focused: focused}
	case editor.FieldTimeTo:
		return view.FormRow{Label: "To", Value: m.form.timeTo.View(), Focused: focused}
	case editor.FieldPriority:
		return view.FormRow{Label: "Priority", Value: m.form.priority.View(), Focused: focused}
	}
	return view.FormRow{}
}

// formBounds returns the screen lines the form card occupies, for mouse
// hit-testing. The card always sits directly under the header.
func (m Model) formBounds() region {
	leftW := m.width - previewPaneWidth - columnGap
	if leftW < 20 {
		leftW = m.width / 2
	}
	return region{
		top:    headerHeight,
		height: lipgloss.Height(m.renderForm(leftW)),
	}
}

func (m Model) headerModel() view.HeaderModel {
	return view.HeaderModel{
		Title:         "Slot Priorities",
		Event:         m.config.Event.Name,
		Subtitle:      "Ordered rules · first match wins · 1 is the highest priority",
		Width:         m.width,
		TitleStyle:    m.styles.TitleStyle,
		EventStyle:    m.styles.EventStyle,
		SubtitleStyle: m.styles.SubtitleStyle,
	}
}

func (m Model) ruleListModel(width int) view.RuleListModel {
	rules := m.ed.Rules()
	rows := make([]view.RuleRow, len(rules))
	for i, r := range rules {
		rows[i] = view.RuleRow{
			Priority:   r.Priority,
			Segments:   rule.Describe(r),
			MatchCount: engine.MatchCount(m.slots, r),
		}
	}

	moving, hover := -1, -1
	if drag := m.ed.Drag(); drag != nil {
		moving, hover = drag.SourceIdx, drag.HoverIdx
	}

	return view.RuleListModel{
		Rows:          rows,
		Cursor:        m.cursor,
		Width:         width,
		Moving:        moving,
		Hover:         hover,
		BadgeStyle:    m.styles.RuleBadgeStyle,
		DescStyle:     m.styles.RuleDescStyle,
		ValueStyle:    m.styles.RuleValueStyle,
		MetaStyle:     m.styles.RuleMetaStyle,
		CursorStyle:   m.styles.RuleCursorStyle,
		MovingStyle:   m.styles.RuleMovingStyle,
		DropHintStyle: m.styles.RuleDropHintStyle,
		EmptyTitle:    m.styles.EmptyTitleStyle,
		EmptySub:      m.styles.EmptySubStyle,
	}
}
