package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ireyes/slotprio/internal/engine"
	"github.com/ireyes/slotprio/internal/event"
)

func (a *App) previewCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the prioritised timeline for the committed rules",
		Long: `Print the prioritised timeline for the committed rules.

Shows the priority distribution across all slots, then a per-day
timeline where consecutive slots resolving to the same priority are
folded into one row.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			rules, err := a.loadRules(context.Background())
			if err != nil {
				return err
			}

			days := a.config.Days()
			slots := event.Generate(days, a.config.Event.Slots)
			views := engine.BuildViews(slots, days, rules)

			fmt.Printf("%s  %s\n\n",
				formatHeader(a.config.Event.Name),
				formatMuted(fmt.Sprintf("%d slots, %d rules", views.Total, len(rules))))

			for _, b := range views.Buckets {
				if b.Unset {
					fmt.Printf("  %s %s\n", formatUnset("unset"), formatStats(fmt.Sprintf("×%d", b.Count)))
					continue
				}
				fmt.Printf("  %s %s\n",
					formatPriority(fmt.Sprintf("P%-3d", b.Priority)),
					formatStats(fmt.Sprintf("×%d", b.Count)))
			}

			for _, day := range views.Timeline {
				fmt.Printf("\n%s\n", formatHeader(day.Day.Label))
				for _, g := range day.Groups {
					if g.Unset {
						fmt.Printf("  %s  %s\n",
							formatUnset(fmt.Sprintf("  · %s-%s", g.StartTime, g.EndTime)),
							formatMuted(fmt.Sprintf("%d slots", g.Count)))
						continue
					}
					fmt.Printf("  %s %s-%s  %s\n",
						formatPriority(fmt.Sprintf("%3d", g.Priority)),
						g.StartTime, g.EndTime,
						formatMuted(fmt.Sprintf("%d slots", g.Count)))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
