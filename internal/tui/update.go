package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ireyes/slotprio/internal/editor"
	"github.com/ireyes/slotprio/internal/tui/commands"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		DebugLog("keypress", map[string]any{"key": msg.String(), "mode": int(m.mode)})
		var next tea.Model
		var cmd tea.Cmd
		switch m.mode {
		case ModeForm:
			next, cmd = m.updateForm(msg)
		case ModeMove:
			next, cmd = m.updateMove(msg)
		default:
			next, cmd = m.updateNormal(msg)
		}
		if nm, ok := next.(Model); ok && nm.mode != m.mode {
			LogModeChange(m.mode, nm.mode, msg.String())
		}
		return next, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case commands.RulesSavedMsg:
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		DebugLog("error", map[string]any{"err": msg.Err.Error()})
		return m, m.showToast("Error: " + msg.Err.Error())

	case commands.ClearToastMsg:
		// Only clear once the newest toast's deadline has passed.
		if !time.Now().Before(m.toastUntil) {
			m.toast = ""
		}
		return m, nil
	}

	return m, nil
}

// updateForm handles keys while the inline form is open.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.ed.Draft()
	if d == nil {
		m.mode = ModeNormal
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.ed.Cancel()
		m.mode = ModeNormal
		m.refreshViews()
		return m, nil

	case "enter":
		editing := m.ed.State() == editor.StateEditing
		if m.ed.Confirm() {
			m.mode = ModeNormal
			m.clampCursor()
			if !editing {
				m.cursor = m.ed.Len() - 1
			}
			m.refreshViews()
			toast := "Rule added"
			action := "add"
			if editing {
				toast = "Rule updated"
				action = "update"
			}
			LogRules(action, ruleIDs(m.ed.Rules()))
			return m, tea.Batch(
				m.showToast(toast),
				commands.SaveRules(m.repo, m.ed.Rules()),
			)
		}
		return m, nil

	case "tab", "down":
		m.form.next(d)
		return m, nil

	case "shift+tab", "up":
		m.form.prev(d)
		return m, nil
	}

	changed, cmd := m.form.handleKey(msg, m.ed, m.dayLabels(), m.locations)
	if changed {
		m.refreshViews()
	}
	return m, cmd
}

// updateMouse dismisses the form on clicks outside its rendered bounds.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.mode == ModeForm && !m.formBounds().contains(msg.Y) {
		m.ed.Cancel()
		m.mode = ModeNormal
		m.refreshViews()
	}
	return m, nil
}
