// Package cli provides the Cobra command structure for structsel.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/structsel/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root structsel command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "structsel",
		Short: "Structural selection for source files",
		Long: `structsel grows cursor positions and selections into the smallest
enclosing syntactic unit, step by step, up to the whole file - and can
fan a selection out into one selection per attribute name on the
nearest markup element.

It parses TypeScript, TSX, JavaScript, JSX, and Markdown; anything else
is reported as unsupported so a host editor can fall back to its own
grow/shrink behavior.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newGrowCommand(flags))
	rootCmd.AddCommand(newAttrsCommand(flags))
	rootCmd.AddCommand(newInspectCommand(flags))
	rootCmd.AddCommand(newLanguagesCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
