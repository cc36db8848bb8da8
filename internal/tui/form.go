package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ireyes/slotprio/internal/editor"
	"github.com/ireyes/slotprio/internal/rule"
)

// kindOrder is the cycle order of the rule type selector.
var kindOrder = []rule.Kind{rule.KindDay, rule.KindDayTime, rule.KindTimeRange, rule.KindLocation}

// kindLabel is the selector label shown for each rule type.
func kindLabel(k rule.Kind) string {
	switch k {
	case rule.KindDay:
		return "Day"
	case rule.KindDayTime:
		return "Day + time"
	case rule.KindTimeRange:
		return "Time range"
	case rule.KindLocation:
		return "Location"
	}
	return string(k)
}

// formState holds the inline rule form widgets. The form is a thin shell
// over the editor's draft: selectors write through on every change, text
// inputs write through on every keystroke, so the preview pane always
// reflects what is on screen.
type formState struct {
	focus    int
	time     textinput.Model
	timeFrom textinput.Model
	timeTo   textinput.Model
	priority textinput.Model
}

func newInput(s *Styles, placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 8
	in.Prompt = ""
	in.TextStyle = s.InputTextStyle
	in.Cursor.Style = s.InputCursorStyle
	in.PlaceholderStyle = s.PlaceholderStyle
	return in
}

func newFormState(s *Styles) formState {
	return formState{
		time:     newInput(s, "09:00", 5),
		timeFrom: newInput(s, "09:00", 5),
		timeTo:   newInput(s, "11:00", 5),
		priority: newInput(s, "50", 3),
	}
}

// fields returns the visible field sequence for the draft's rule type.
func (f *formState) fields(d *editor.Draft) []editor.Field {
	switch d.Kind {
	case rule.KindDay:
		return []editor.Field{editor.FieldKind, editor.FieldDay, editor.FieldPriority}
	case rule.KindDayTime:
		return []editor.Field{editor.FieldKind, editor.FieldDay, editor.FieldTime, editor.FieldPriority}
	case rule.KindTimeRange:
		return []editor.Field{editor.FieldKind, editor.FieldDay, editor.FieldTimeFrom, editor.FieldTimeTo, editor.FieldPriority}
	case rule.KindLocation:
		return []editor.Field{editor.FieldKind, editor.FieldDay, editor.FieldLocation, editor.FieldPriority}
	}
	return []editor.Field{editor.FieldKind, editor.FieldPriority}
}

// focused returns the field currently holding focus.
func (f *formState) focused(d *editor.Draft) editor.Field {
	fields := f.fields(d)
	if f.focus >= len(fields) {
		return fields[len(fields)-1]
	}
	return fields[f.focus]
}

// open seeds the form widgets from a freshly opened draft.
func (f *formState) open(d *editor.Draft) {
	f.focus = 0
	f.time.SetValue(d.Time)
	f.timeFrom.SetValue(d.TimeFrom)
	f.timeTo.SetValue(d.TimeTo)
	f.priority.SetValue(d.PriorityRaw)
	f.syncFocus(d)
}

// next moves focus forward, wrapping around.
func (f *formState) next(d *editor.Draft) {
	f.focus = (f.focus + 1) % len(f.fields(d))
	f.syncFocus(d)
}

// prev moves focus backward, wrapping around.
func (f *formState) prev(d *editor.Draft) {
	n := len(f.fields(d))
	f.focus = (f.focus - 1 + n) % n
	f.syncFocus(d)
}

// syncFocus focuses the text input matching the focused field and blurs
// the rest. Selector fields hold focus without an input widget.
func (f *formState) syncFocus(d *editor.Draft) {
	f.time.Blur()
	f.timeFrom.Blur()
	f.timeTo.Blur()
	f.priority.Blur()
	switch f.focused(d) {
	case editor.FieldTime:
		f.time.Focus()
	case editor.FieldTimeFrom:
		f.timeFrom.Focus()
	case editor.FieldTimeTo:
		f.timeTo.Focus()
	case editor.FieldPriority:
		f.priority.Focus()
	}
}

// input returns the text input backing a field, or nil for selectors.
func (f *formState) input(field editor.Field) *textinput.Model {
	switch field {
	case editor.FieldTime:
		return &f.time
	case editor.FieldTimeFrom:
		return &f.timeFrom
	case editor.FieldTimeTo:
		return &f.timeTo
	case editor.FieldPriority:
		return &f.priority
	}
	return nil
}

// handleKey routes a key to the focused widget and writes the change into
// the editor's draft. It reports whether the draft changed.
func (f *formState) handleKey(msg tea.KeyMsg, ed *editor.Editor, days []string, locations []string) (bool, tea.Cmd) {
	d := ed.Draft()
	if d == nil {
		return false, nil
	}
	field := f.focused(d)

	switch msg.String() {
	case "left", "h":
		if f.cycle(ed, d, field, days, locations, -1) {
			return true, nil
		}
	case "right", "l":
		if f.cycle(ed, d, field, days, locations, 1) {
			return true, nil
		}
	}

	in := f.input(field)
	if in == nil {
		return false, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	ed.UpdateDraft(field, in.Value())
	return true, cmd
}

// cycle steps a selector field through its options. Text fields ignore it
// so left/right stay available for cursor movement inside the input.
func (f *formState) cycle(ed *editor.Editor, d *editor.Draft, field editor.Field, days, locations []string, dir int) bool {
	switch field {
	case editor.FieldKind:
		i := indexOfKind(d.Kind)
		next := kindOrder[(i+dir+len(kindOrder))%len(kindOrder)]
		ed.UpdateDraft(editor.FieldKind, string(next))
		// Re-seed inputs the new variant exposes.
		nd := ed.Draft()
		f.time.SetValue(nd.Time)
		f.timeFrom.SetValue(nd.TimeFrom)
		f.timeTo.SetValue(nd.TimeTo)
		f.syncFocus(nd)
		return true
	case editor.FieldDay:
		opts := dayOptions(d.Kind, days)
		i := indexOf(opts, d.Day)
		ed.UpdateDraft(editor.FieldDay, opts[(i+dir+len(opts))%len(opts)])
		return true
	case editor.FieldLocation:
		if len(locations) == 0 {
			return true
		}
		i := indexOf(locations, d.Location)
		ed.UpdateDraft(editor.FieldLocation, locations[(i+dir+len(locations))%len(locations)])
		return true
	}
	return false
}

// dayOptions returns the day selector options for a rule type. Day-optional
// variants offer the all-days wildcard first.
func dayOptions(k rule.Kind, days []string) []string {
	if k == rule.KindTimeRange || k == rule.KindLocation {
		return append([]string{rule.AllDays}, days...)
	}
	return days
}

func indexOf(opts []string, v string) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

func indexOfKind(k rule.Kind) int {
	for i, o := range kindOrder {
		if o == k {
			return i
		}
	}
	return 0
}
