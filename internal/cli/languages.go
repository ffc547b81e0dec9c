package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages with structural selection support",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLanguages(cmd, root)
		},
	}
	return cmd
}

func runLanguages(cmd *cobra.Command, root *rootFlags) error {
	cfg, err := loadConfig(cmd.Context(), root)
	if err != nil {
		return err
	}

	structural := newStructuralRegistry(cfg).Languages()
	attrs := newAttributeRegistry(cfg).Languages()
	sort.Strings(structural)

	fanOut := make(map[string]bool, len(attrs))
	for _, lang := range attrs {
		fanOut[lang] = true
	}

	for _, lang := range structural {
		if fanOut[lang] {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (grow, attrs)\n", lang)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (grow)\n", lang)
		}
	}
	return nil
}
