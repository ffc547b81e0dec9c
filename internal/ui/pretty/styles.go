// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Selection  lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style
	StepLabel  lipgloss.Style
	TreeKind   lipgloss.Style
	TreeClass  lipgloss.Style

	Success lipgloss.Style
	Failure lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style

	// Width is the output width budget used when truncating excerpts.
	Width int
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Selection:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		StepLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		TreeKind:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TreeClass:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),

		Width: defaultTermWidth,
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:   plain,
		Location:   plain,
		Selection:  plain,
		SourceLine: plain,
		Caret:      plain,
		StepLabel:  plain,
		TreeKind:   plain,
		TreeClass:  plain,
		Success:    plain,
		Failure:    plain,
		Dim:        plain,
		Bold:       plain,
		Width:      defaultTermWidth,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
