package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ireyes/slotprio/internal/rule"
)

func (a *App) exportCmd() *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the committed rules as JSON",
		Long: `Export the committed rules as JSON, in evaluation order.

The output is the same payload the scheduler consumes: an ordered array
of rules, first match wins. By default it goes to stdout; use
--clipboard to copy it instead.`,
		Example: `  slotprio export > rules.json
  slotprio export --clipboard`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rules, err := a.loadRules(context.Background())
			if err != nil {
				return err
			}
			data, err := rule.EncodeJSON(rules)
			if err != nil {
				return fmt.Errorf("encoding rules: %w", err)
			}

			if toClipboard {
				if err := clipboard.WriteAll(string(data)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Printf("Copied %d rules to clipboard.\n", len(rules))
				return nil
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy to clipboard instead of stdout")
	return cmd
}

func (a *App) importCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import rules from a JSON file",
		Long: `Import rules from a JSON file produced by export.

Imported rules are appended after the existing ones and get fresh ids;
with --replace the existing rules are dropped first. Rules with an
unknown type are rejected, priorities are clamped to 1-100.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			imported, err := rule.DecodeJSON(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			ctx := context.Background()
			var rules []rule.Rule
			if !replace {
				rules, err = a.loadRules(ctx)
				if err != nil {
					return err
				}
			}

			next := rule.NextID(rules)
			for _, r := range imported {
				r.ID = next
				next++
				rules = append(rules, r)
			}

			if err := a.saveRules(ctx, rules); err != nil {
				return err
			}
			fmt.Printf("Imported %d rules (%d total).\n", len(imported), len(rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace existing rules instead of appending")
	return cmd
}
