package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ireyes/slotprio/internal/engine"
	"github.com/ireyes/slotprio/internal/event"
	"github.com/ireyes/slotprio/internal/rule"
)

func (a *App) listCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the committed rules in evaluation order",
		Long: `List the committed rules in evaluation order.

Each rule is shown with its priority, its description, and how many of
the event's slots it matches on its own. Matching during resolution is
still first-match-wins, so overlapping rules lower in the list can
match fewer slots than shown here.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			rules, err := a.loadRules(context.Background())
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				fmt.Println("No rules yet. Run slotprio to add some.")
				return nil
			}

			// Room left for the description between the "NN. [nnn]"
			// prefix and the match count suffix.
			descWidth := termWidth() - 24
			if descWidth < 20 {
				descWidth = 20
			}

			slots := event.Generate(a.config.Days(), a.config.Event.Slots)
			for i, r := range rules {
				n := engine.MatchCount(slots, r)
				fmt.Printf("%2d. %s %s  %s\n",
					i+1,
					formatPriority(fmt.Sprintf("[%3d]", r.Priority)),
					describeColored(r, descWidth),
					formatMuted(fmt.Sprintf("(%d slots)", n)),
				)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) slotsCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the generated slot catalogue",
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			days := a.config.Days()
			slots := event.Generate(days, a.config.Event.Slots)

			var currentDay string
			for _, s := range slots {
				if s.Day != currentDay {
					if currentDay != "" {
						fmt.Println()
					}
					fmt.Println(formatHeader("=== " + s.Day + " ==="))
					currentDay = s.Day
				}
				fmt.Printf("  %s-%s  %s %s\n",
					s.StartTime, s.EndTime, s.Location,
					formatMuted(fmt.Sprintf("(%dm)", s.Duration)))
			}
			fmt.Printf("\n%s\n", formatStats(fmt.Sprintf("%d slots total", len(slots))))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// describeColored renders a rule description with highlighted values,
// truncating it once it outgrows maxWidth.
func describeColored(r rule.Rule, maxWidth int) string {
	var b strings.Builder
	used := 0
	for _, seg := range rule.Describe(r) {
		text := seg.Text
		if used+len(text) > maxWidth {
			keep := maxWidth - used - 3
			if keep < 0 {
				keep = 0
			}
			text = text[:keep] + "..."
		}
		if seg.Value {
			b.WriteString(formatValue(text))
		} else {
			b.WriteString(text)
		}
		used += len(text)
		if used >= maxWidth {
			break
		}
	}
	return b.String()
}
