package pretty

import (
	"io"

	"golang.org/x/term"
)

// defaultTermWidth is assumed when the writer is not a terminal.
const defaultTermWidth = 100

// TerminalWidth attempts to get the terminal width from the writer.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
