package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ireyes/slotprio/internal/engine"
)

// PreviewModel holds everything needed to render the live preview pane.
type PreviewModel struct {
	Total    int
	Buckets  []engine.Bucket
	Timeline []engine.DayTimeline
	Filtered bool // timeline narrowed to slots matching an open draft
	Width    int

	TitleStyle      lipgloss.Style
	SlotCountStyle  lipgloss.Style
	StatStyle       lipgloss.Style
	StatUnsetStyle  lipgloss.Style
	DayLabelStyle   lipgloss.Style
	RunBadgeStyle   lipgloss.Style
	RunUnsetBadge   lipgloss.Style
	RunMatchedStyle lipgloss.Style
	RunUnsetStyle   lipgloss.Style
	NoMatchStyle    lipgloss.Style
}

// RenderPreview renders the bucket counts and the per-day timeline.
func RenderPreview(m PreviewModel) string {
	var b strings.Builder

	title := "Live preview"
	if m.Filtered {
		title = "Live preview · draft matches"
	}
	b.WriteString(m.TitleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(m.SlotCountStyle.Render(fmt.Sprintf("%d slots", m.Total)))
	b.WriteString("\n")
	b.WriteString(renderBuckets(m))
	b.WriteString("\n\n")
	b.WriteString(renderTimeline(m))
	return b.String()
}

// renderBuckets renders one "P<n> ×count" chip per priority in use, with
// the unset bucket last.
func renderBuckets(m PreviewModel) string {
	if len(m.Buckets) == 0 {
		return m.StatUnsetStyle.Render("all unset")
	}
	chips := make([]string, 0, len(m.Buckets))
	for _, bk := range m.Buckets {
		if bk.Unset {
			chips = append(chips, m.StatUnsetStyle.Render(fmt.Sprintf("unset ×%d", bk.Count)))
			continue
		}
		chips = append(chips, m.StatStyle.Render(fmt.Sprintf("P%d ×%d", bk.Priority, bk.Count)))
	}
	return TruncateLine(strings.Join(chips, "  "), m.Width)
}

// renderTimeline renders one block per day. While the draft filter is on,
// days with no matching slots stay visible with a "No matching slots" row
// so the operator can see where the draft does not reach.
func renderTimeline(m PreviewModel) string {
	var b strings.Builder
	rendered := 0
	for _, day := range m.Timeline {
		if len(day.Groups) == 0 && !m.Filtered {
			continue
		}
		if rendered > 0 {
			b.WriteString("\n")
		}
		rendered++
		b.WriteString(m.DayLabelStyle.Render(day.Day.Label))
		b.WriteString("\n")
		if len(day.Groups) == 0 {
			b.WriteString(TruncateLine("  "+m.NoMatchStyle.Render("No matching slots"), m.Width))
			b.WriteString("\n")
			continue
		}
		for _, g := range day.Groups {
			b.WriteString(renderGroup(m, g))
			b.WriteString("\n")
		}
	}
	if rendered == 0 {
		return m.NoMatchStyle.Render("No matching slots")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGroup(m PreviewModel, g engine.Group) string {
	span := fmt.Sprintf("%s–%s", g.StartTime, g.EndTime)
	count := fmt.Sprintf("·%d", g.Count)
	if g.Unset {
		line := m.RunUnsetBadge.Render(" · ") + " " + m.RunUnsetStyle.Render(span+" "+count)
		return TruncateLine("  "+line, m.Width)
	}
	badge := m.RunBadgeStyle.Render(fmt.Sprintf("%d", g.Priority))
	line := badge + " " + m.RunMatchedStyle.Render(span+" "+count)
	return TruncateLine("  "+line, m.Width)
}
