package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ireyes/slotprio/internal/config"
	"github.com/ireyes/slotprio/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "slotprio",
		Short: "Priority rules for event meeting slots",
		Long: `Slotprio manages the priority rules for an event's meeting slots.

Rules are evaluated top to bottom and the first match wins; slots no
rule matches stay unprioritised. The resulting priorities feed the
meeting scheduler downstream. Run without arguments to open the rule
editor with a live preview of the prioritised timeline.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to slotprio-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.previewCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("slotprio %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
