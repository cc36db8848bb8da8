package tui

import (
	"github.com/ireyes/slotprio/internal/tui/view"
)

// previewModel assembles the right-hand pane. While a draft is open the
// timeline switches to the draft-filtered preview.
func (m Model) previewModel(width int) view.PreviewModel {
	timeline := m.views.Timeline
	filtered := false
	if m.preview != nil {
		timeline = m.preview
		filtered = true
	}
	return view.PreviewModel{
		Total:           m.views.Total,
		Buckets:         m.views.Buckets,
		Timeline:        timeline,
		Filtered:        filtered,
		Width:           width,
		TitleStyle:      m.styles.PreviewTitleStyle,
		SlotCountStyle:  m.styles.SlotCountStyle,
		StatStyle:       m.styles.StatStyle,
		StatUnsetStyle:  m.styles.StatUnsetStyle,
		DayLabelStyle:   m.styles.DayLabelStyle,
		RunBadgeStyle:   m.styles.RunBadgeStyle,
		RunUnsetBadge:   m.styles.RunUnsetBadge,
		RunMatchedStyle: m.styles.RunMatchedStyle,
		RunUnsetStyle:   m.styles.RunUnsetStyle,
		NoMatchStyle:    m.styles.NoMatchStyle,
	}
}
