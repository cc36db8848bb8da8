// Package editor implements the rule-editing state machine: committed rule
// list, new-rule and edit drafts, reorder by step, and grab-and-move
// reordering. All operations are synchronous and total; invalid events are
// no-ops, never errors.
package editor

import (
	"github.com/ireyes/slotprio/internal/event"
	"github.com/ireyes/slotprio/internal/rule"
)

// State is the editor's interaction state.
type State int

const (
	// StateIdle means no draft exists; list mutations are accepted.
	StateIdle State = iota
	// StateCreating means a new-rule draft is open.
	StateCreating
	// StateEditing means an existing rule is open as an edit draft.
	StateEditing
)

// DragState tracks an in-flight grab-and-move reorder. SourceIdx is
// captured when the move starts and stays fixed while HoverIdx follows the
// current target position.
type DragState struct {
	SourceIdx int
	HoverIdx  int
}

// Editor owns the committed rule list and the optional draft. At most one
// draft exists at a time; a draft never touches the committed list until
// Confirm.
type Editor struct {
	days      []event.Day
	locations []string

	rules  []rule.Rule
	nextID int64

	state  State
	editID int64 // valid only in StateEditing
	draft  *Draft
	drag   *DragState
}

// New creates an editor over the given catalogue dimensions, seeded with
// previously committed rules. Fresh ids continue after the largest seed id.
func New(days []event.Day, locations []string, initial []rule.Rule) *Editor {
	rules := make([]rule.Rule, len(initial))
	copy(rules, initial)
	return &Editor{
		days:      days,
		locations: locations,
		rules:     rules,
		nextID:    rule.NextID(rules),
	}
}

// State returns the current interaction state.
func (e *Editor) State() State { return e.state }

// Rules returns a copy of the committed rule list in evaluation order.
func (e *Editor) Rules() []rule.Rule {
	out := make([]rule.Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Len returns the number of committed rules.
func (e *Editor) Len() int { return len(e.rules) }

// Draft returns the active draft, or nil when idle.
func (e *Editor) Draft() *Draft { return e.draft }

// EditingID returns the id of the rule being edited. Only meaningful in
// StateEditing.
func (e *Editor) EditingID() int64 { return e.editID }

// Drag returns the transient drag state, or nil when no move is active.
func (e *Editor) Drag() *DragState { return e.drag }

// indexOf returns the list index of the rule with the given id, or -1.
func (e *Editor) indexOf(id int64) int {
	for i, r := range e.rules {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// OpenCreate opens a new-rule draft with default fields. Accepted only
// when idle.
func (e *Editor) OpenCreate() bool {
	if e.state != StateIdle {
		return false
	}
	e.draft = newDraft(e.days, e.locations)
	e.state = StateCreating
	return true
}

// OpenEdit opens an edit draft snapshotting the rule with the given id.
// Accepted only when idle; unknown ids are ignored.
func (e *Editor) OpenEdit(id int64) bool {
	if e.state != StateIdle {
		return false
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	e.draft = draftFromRule(e.rules[idx], e.days, e.locations)
	e.editID = id
	e.state = StateEditing
	return true
}

// Cancel discards the draft and returns to idle. Total: no committed rule
// is touched.
func (e *Editor) Cancel() {
	if e.state == StateIdle {
		return
	}
	e.draft = nil
	e.editID = 0
	e.state = StateIdle
}

// Confirm commits the draft: appended with a fresh id when creating,
// replaced in place with its id preserved when editing. The priority is
// clamped on the way in, so Confirm never fails; it reports whether a
// commit happened.
func (e *Editor) Confirm() bool {
	switch e.state {
	case StateCreating:
		r := e.draft.rule(e.nextID)
		e.rules = append(e.rules, r)
		e.nextID++
	case StateEditing:
		idx := e.indexOf(e.editID)
		if idx < 0 {
			// Edit target vanished; nothing to replace.
			e.Cancel()
			return false
		}
		e.rules[idx] = e.draft.rule(e.editID)
	default:
		return false
	}
	e.draft = nil
	e.editID = 0
	e.state = StateIdle
	return true
}

// UpdateDraft applies a field change to the active draft. Ignored when no
// draft exists.
func (e *Editor) UpdateDraft(field Field, value string) {
	if e.draft == nil {
		return
	}
	e.draft.set(field, value, e.days, e.locations)
}

// Remove drops the rule with the given id. While editing, removing the
// edit target also discards the draft and returns to idle; removing any
// other rule keeps the edit open. Ignored while creating.
func (e *Editor) Remove(id int64) bool {
	if e.state == StateCreating {
		return false
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	e.rules = append(e.rules[:idx], e.rules[idx+1:]...)
	if e.state == StateEditing && id == e.editID {
		e.Cancel()
	}
	return true
}

// Reorder swaps the rule with the given id with its neighbour (dir -1 up,
// +1 down). Moves off either end are no-ops. Accepted only when idle.
func (e *Editor) Reorder(id int64, dir int) bool {
	if e.state != StateIdle {
		return false
	}
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	next := idx + dir
	if next < 0 || next >= len(e.rules) {
		return false
	}
	e.rules[idx], e.rules[next] = e.rules[next], e.rules[idx]
	return true
}

// DragStart begins a grab-and-move reorder of the rule at idx. Ignored
// unless idle.
func (e *Editor) DragStart(idx int) bool {
	if e.state != StateIdle || idx < 0 || idx >= len(e.rules) {
		return false
	}
	e.drag = &DragState{SourceIdx: idx, HoverIdx: idx}
	return true
}

// DragOver updates the hover position of an active move. Out-of-range
// positions clamp to the list bounds.
func (e *Editor) DragOver(idx int) {
	if e.drag == nil {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(e.rules) {
		idx = len(e.rules) - 1
	}
	e.drag.HoverIdx = idx
}

// Drop completes an active move: the grabbed rule is removed and
// reinserted before the element that was at the drop index. Uses the
// source index captured at DragStart, since positions shift during the
// gesture. Clears the drag state.
func (e *Editor) Drop(idx int) bool {
	drag := e.drag
	e.drag = nil
	if drag == nil || drag.SourceIdx < 0 || drag.SourceIdx >= len(e.rules) {
		return false
	}
	src := drag.SourceIdx
	if idx < 0 {
		idx = 0
	}
	if idx > len(e.rules)-1 {
		idx = len(e.rules) - 1
	}
	if idx == src {
		return false
	}
	moved := e.rules[src]
	rest := append(e.rules[:src], e.rules[src+1:]...)
	if idx > src {
		idx--
	}
	rest = append(rest, rule.Rule{})
	copy(rest[idx+1:], rest[idx:])
	rest[idx] = moved
	e.rules = rest
	return true
}

// DragEnd abandons an active move without reordering.
func (e *Editor) DragEnd() {
	e.drag = nil
}
