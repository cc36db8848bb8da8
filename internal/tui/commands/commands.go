// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ireyes/slotprio/internal/rule"
)

// RulesSavedMsg is sent when the rule list has been persisted.
type RulesSavedMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearToastMsg is sent to clear an expired toast.
type ClearToastMsg struct{}

// SaveRules persists the rule list in the background. A nil repository
// means rules live in memory only; the command is a no-op then.
func SaveRules(repo rule.Repository, rules []rule.Rule) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := repo.SaveRules(context.Background(), rules); err != nil {
			return ErrMsg{Err: err}
		}
		return RulesSavedMsg{}
	}
}
