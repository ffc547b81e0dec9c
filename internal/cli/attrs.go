package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/structsel/internal/logging"
	"github.com/yaklabco/structsel/internal/ui/pretty"
	"github.com/yaklabco/structsel/pkg/engine"
)

func newAttrsCommand(root *rootFlags) *cobra.Command {
	var at []string

	cmd := &cobra.Command{
		Use:   "attrs <file>",
		Short: "Select every attribute name on the nearest markup element",
		Long: `Fan the selection out: walk from each cursor to the nearest enclosing
markup element and produce one selection per attribute name it carries.

Example:
  structsel attrs app.tsx --at 21`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttrs(cmd, args[0], root, at)
		},
	}

	cmd.Flags().StringArrayVar(&at, "at", nil,
		"cursor offset or anchor:active pair (repeatable)")

	return cmd
}

func runAttrs(cmd *cobra.Command, path string, root *rootFlags, at []string) error {
	cfg, err := loadConfig(cmd.Context(), root)
	if err != nil {
		return err
	}
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	current, err := parseSelections(at)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
	styles.Width = pretty.TerminalWidth(cmd.OutOrStdout())
	eng := engine.New(newAttributeRegistry(cfg), engine.WithLogger(logging.Default()))

	action, err := eng.Grow(cmd.Context(), doc, current)
	if err != nil {
		return err
	}

	switch action.Kind {
	case engine.ActionNative:
		fmt.Fprintf(cmd.OutOrStdout(),
			"attribute selection is not available for language %q\n", doc.Language)
	case engine.ActionNone:
		fmt.Fprintln(cmd.OutOrStdout(), "no markup element with attributes found")
	case engine.ActionApply:
		for _, sel := range action.Selections {
			fmt.Fprint(cmd.OutOrStdout(), styles.FormatSpan(doc.Path, doc.Content, sel.Span()))
		}
	}
	return nil
}
