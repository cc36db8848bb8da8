package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ireyes/slotprio/internal/tui/commands"
)

// toastLifetime is how long transient feedback stays on screen. A newer
// toast pushes the deadline out, so an older timer never clears it early.
const toastLifetime = 2 * time.Second

// showToast sets transient feedback and schedules its expiry.
func (m *Model) showToast(msg string) tea.Cmd {
	m.toast = msg
	m.toastUntil = time.Now().Add(toastLifetime)
	return tickToastExpiry()
}

// tickToastExpiry schedules a clear check after the toast lifetime.
func tickToastExpiry() tea.Cmd {
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return commands.ClearToastMsg{}
	})
}
