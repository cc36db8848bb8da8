package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ireyes/slotprio/internal/rule"
)

// RuleRow is one committed rule prepared for rendering.
type RuleRow struct {
	Priority   int
	Segments   []rule.Segment
	MatchCount int
}

// RuleListModel holds everything needed to render the rule panel.
type RuleListModel struct {
	Rows   []RuleRow
	Cursor int
	Width  int

	// Grab-and-move state; Moving < 0 means no move is active.
	Moving int
	Hover  int

	BadgeStyle    lipgloss.Style
	DescStyle     lipgloss.Style
	ValueStyle    lipgloss.Style
	MetaStyle     lipgloss.Style
	CursorStyle   lipgloss.Style
	MovingStyle   lipgloss.Style
	DropHintStyle lipgloss.Style
	EmptyTitle    lipgloss.Style
	EmptySub      lipgloss.Style
}

// RenderRuleList renders the ordered rule list, or the empty state when no
// rules exist yet.
func RenderRuleList(m RuleListModel) string {
	if len(m.Rows) == 0 {
		return m.EmptyTitle.Render("No priority rules yet") + "\n" +
			m.EmptySub.Render("Press a to add your first rule. Slots without a") + "\n" +
			m.EmptySub.Render("matching rule stay unprioritised.")
	}

	var b strings.Builder
	for i, row := range m.Rows {
		if m.Moving >= 0 && i == m.Hover && m.Hover != m.Moving {
			b.WriteString(m.DropHintStyle.Render("┈┈┈ move here ┈┈┈"))
			b.WriteString("\n")
		}
		b.WriteString(renderRuleRow(m, i, row))
		if i < len(m.Rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderRuleRow(m RuleListModel, i int, row RuleRow) string {
	marker := "  "
	desc := m.DescStyle
	if m.Moving == i {
		marker = m.MovingStyle.Render("◆ ")
		desc = m.MovingStyle
	} else if i == m.Cursor {
		marker = m.CursorStyle.Render("▌ ")
	}

	badge := m.BadgeStyle.Render(fmt.Sprintf("%3d", row.Priority))

	var phrase strings.Builder
	for _, seg := range row.Segments {
		if seg.Value {
			phrase.WriteString(m.ValueStyle.Render(seg.Text))
		} else {
			phrase.WriteString(desc.Render(seg.Text))
		}
	}

	meta := m.MetaStyle.Render(fmt.Sprintf("%d slots matched", row.MatchCount))
	if row.MatchCount == 1 {
		meta = m.MetaStyle.Render("1 slot matched")
	}

	line := marker + badge + " " + phrase.String()
	return TruncateLine(line, m.Width) + "\n" + TruncateLine("      "+meta, m.Width)
}
