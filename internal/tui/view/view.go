// Package view holds pure render functions for the TUI. Each function
// takes a view-model struct built by the parent model and returns a
// string; no function reads or mutates application state.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateLine cuts a styled line down to width cells, appending an
// ellipsis when anything was dropped.
func TruncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// PadBox pads content to an exact width and height with blank lines and
// trailing spaces so columns line up when joined horizontally.
func PadBox(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(lines, "\n")
}
