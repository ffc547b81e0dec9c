package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/structsel/internal/logging"
	"github.com/yaklabco/structsel/internal/ui/pretty"
	"github.com/yaklabco/structsel/pkg/engine"
)

type growFlags struct {
	at    []string
	steps int
}

func newGrowCommand(root *rootFlags) *cobra.Command {
	flags := &growFlags{}

	cmd := &cobra.Command{
		Use:   "grow <file>",
		Short: "Grow selections structurally, step by step",
		Long: `Grow each cursor or selection into the smallest enclosing syntactic
unit, repeating for the requested number of steps.

Examples:
  structsel grow app.ts --at 13              # one step from a cursor
  structsel grow app.ts --at 13 --steps 3    # three steps
  structsel grow app.tsx --at 5 --at 40      # two simultaneous cursors
  structsel grow app.ts --at 3:9             # from an anchor:active pair`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.at, "at", nil,
		"cursor offset or anchor:active pair (repeatable)")
	cmd.Flags().IntVar(&flags.steps, "steps", 1, "number of growth steps")

	return cmd
}

func runGrow(cmd *cobra.Command, path string, root *rootFlags, flags *growFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd.Context(), root)
	if err != nil {
		return err
	}
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	current, err := parseSelections(flags.at)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
	styles.Width = pretty.TerminalWidth(cmd.OutOrStdout())
	eng := engine.New(newStructuralRegistry(cfg), engine.WithLogger(logger))

	for step := 1; step <= flags.steps; step++ {
		action, err := eng.Grow(cmd.Context(), doc, current)
		if err != nil {
			return err
		}

		switch action.Kind {
		case engine.ActionNative:
			fmt.Fprintf(cmd.OutOrStdout(),
				"no strategy for language %q; a host editor would use its native grow\n",
				doc.Language)
			return nil
		case engine.ActionNone:
			fmt.Fprintln(cmd.OutOrStdout(), "nothing left to grow")
			return nil
		case engine.ActionApply:
			current = action.Selections
			eng.ObserveSelectionChange()

			fmt.Fprint(cmd.OutOrStdout(), styles.FormatStep(step))
			for _, sel := range current {
				fmt.Fprint(cmd.OutOrStdout(), styles.FormatSpan(doc.Path, doc.Content, sel.Span()))
			}
		}
	}

	logger.Debug("grow finished",
		logging.FieldPath, doc.Path,
		logging.FieldLanguage, doc.Language,
		logging.FieldSelections, len(current),
		logging.FieldHistory, eng.HistoryLen())
	return nil
}
