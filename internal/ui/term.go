package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Priority badges: bold magenta, matching the TUI accent
	colorPriority = color.New(color.FgMagenta, color.Bold)

	// Unset slots: dim/grey
	colorUnset = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Counts and stats: green
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Highlighted rule values inside descriptions
	colorValue = color.New(color.FgMagenta)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatPriority formats a priority badge.
func formatPriority(s string) string {
	return colorPriority.Sprint(s)
}

// formatUnset formats text for unset slots.
func formatUnset(s string) string {
	return colorUnset.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for counts.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatValue formats a highlighted value inside a rule description.
func formatValue(s string) string {
	return colorValue.Sprint(s)
}
