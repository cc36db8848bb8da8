package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ireyes/slotprio/internal/rule"
	"github.com/ireyes/slotprio/internal/tui/commands"
)

// updateNormal handles keys in the rule list.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < m.ed.Len()-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		m.cursor = m.ed.Len() - 1
		m.clampCursor()
		return m, nil

	case "a", "n":
		if m.ed.OpenCreate() {
			m.mode = ModeForm
			m.form.open(m.ed.Draft())
			m.refreshViews()
		}
		return m, nil

	case "e", "enter":
		if r, ok := m.ruleAtCursor(); ok && m.ed.OpenEdit(r.ID) {
			m.mode = ModeForm
			m.form.open(m.ed.Draft())
			m.refreshViews()
		}
		return m, nil

	case "x", "d", "delete":
		if r, ok := m.ruleAtCursor(); ok && m.ed.Remove(r.ID) {
			m.clampCursor()
			m.refreshViews()
			LogRules("remove", ruleIDs(m.ed.Rules()))
			return m, tea.Batch(
				m.showToast("Rule removed"),
				commands.SaveRules(m.repo, m.ed.Rules()),
			)
		}
		return m, nil

	case "K", "shift+up":
		if r, ok := m.ruleAtCursor(); ok && m.ed.Reorder(r.ID, -1) {
			m.cursor--
			m.refreshViews()
			LogRules("reorder", ruleIDs(m.ed.Rules()))
			return m, commands.SaveRules(m.repo, m.ed.Rules())
		}
		return m, nil

	case "J", "shift+down":
		if r, ok := m.ruleAtCursor(); ok && m.ed.Reorder(r.ID, 1) {
			m.cursor++
			m.refreshViews()
			LogRules("reorder", ruleIDs(m.ed.Rules()))
			return m, commands.SaveRules(m.repo, m.ed.Rules())
		}
		return m, nil

	case "m", " ":
		if m.ed.DragStart(m.cursor) {
			m.mode = ModeMove
		}
		return m, nil

	case "y":
		return m, m.yankRules()
	}
	return m, nil
}

// updateMove handles keys while a rule is grabbed.
func (m Model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	drag := m.ed.Drag()
	if drag == nil {
		m.mode = ModeNormal
		return m, nil
	}
	switch msg.String() {
	case "j", "down":
		m.ed.DragOver(drag.HoverIdx + 1)
		return m, nil

	case "k", "up":
		m.ed.DragOver(drag.HoverIdx - 1)
		return m, nil

	case "enter", "m", " ":
		hover := drag.HoverIdx
		moved := m.ed.Drop(hover)
		m.mode = ModeNormal
		m.cursor = hover
		m.clampCursor()
		if moved {
			m.refreshViews()
			LogRules("move", ruleIDs(m.ed.Rules()))
			return m, commands.SaveRules(m.repo, m.ed.Rules())
		}
		return m, nil

	case "esc", "q":
		m.ed.DragEnd()
		m.mode = ModeNormal
		return m, nil
	}
	return m, nil
}

// ruleAtCursor returns the committed rule under the cursor.
func (m *Model) ruleAtCursor() (rule.Rule, bool) {
	rules := m.ed.Rules()
	if m.cursor < 0 || m.cursor >= len(rules) {
		return rule.Rule{}, false
	}
	return rules[m.cursor], true
}

// dayLabels returns the day selector labels.
func (m *Model) dayLabels() []string {
	labels := make([]string, len(m.days))
	for i, d := range m.days {
		labels[i] = d.Label
	}
	return labels
}

// yankRules copies the committed rules to the clipboard as JSON.
func (m *Model) yankRules() tea.Cmd {
	data, err := rule.EncodeJSON(m.ed.Rules())
	if err != nil {
		return m.showToast("Error: " + err.Error())
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return m.showToast("Clipboard unavailable")
	}
	return m.showToast("Rules copied to clipboard")
}

func (m Model) helpText() string {
	switch m.mode {
	case ModeForm:
		return "tab field · ←/→ change · enter save · esc cancel"
	case ModeMove:
		return "j/k move · enter drop · esc abort"
	}
	n := m.ed.Len()
	base := "a add · e edit · x remove · J/K reorder · m move · y copy json · q quit"
	return fmt.Sprintf("%d rules · %s", n, base)
}
