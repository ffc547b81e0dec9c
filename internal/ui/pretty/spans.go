package pretty

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/structsel/pkg/textspan"
)

// FormatSpan formats one selection span as path:line:col with the
// covered text, collapsing interior newlines for single-line display.
func (s *Styles) FormatSpan(path string, source []byte, span textspan.Span) string {
	line, col := lineCol(source, span.Start)
	location := fmt.Sprintf("%s:%s",
		s.FilePath.Render(path),
		s.Location.Render(fmt.Sprintf("%d:%d", line, col)),
	)

	text := excerpt(source, span, s.Width)
	return fmt.Sprintf("  %s  [%d-%d)  %s\n",
		location, span.Start, span.End, s.Selection.Render(text))
}

// FormatStep formats one growth step header.
func (s *Styles) FormatStep(step int) string {
	return s.StepLabel.Render(fmt.Sprintf("step %d", step)) + "\n"
}

// FormatCursorContext renders the source line holding the offset with a
// caret underneath, the way compilers point at a position.
func (s *Styles) FormatCursorContext(source []byte, offset int) string {
	lineStart := bytes.LastIndexByte(source[:clamp(offset, len(source))], '\n') + 1
	lineEnd := bytes.IndexByte(source[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(source)
	} else {
		lineEnd += lineStart
	}

	var builder strings.Builder
	builder.WriteString("    " + s.SourceLine.Render(string(source[lineStart:lineEnd])) + "\n")
	builder.WriteString("    " + strings.Repeat(" ", offset-lineStart) + s.Caret.Render("^") + "\n")
	return builder.String()
}

// excerpt returns the span text with newlines flattened and long runs
// truncated to fit the output width, leaving room for the location
// prefix on the same line.
func excerpt(source []byte, span textspan.Span, width int) string {
	const (
		locationBudget = 40
		minLen         = 20
	)

	maxLen := width - locationBudget
	if maxLen < minLen {
		maxLen = minLen
	}

	span = span.Clamp(len(source))
	text := strings.ReplaceAll(string(source[span.Start:span.End]), "\n", "\\n")
	if len(text) > maxLen {
		text = text[:maxLen-3] + "..."
	}
	return text
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(source []byte, offset int) (line, col int) {
	offset = clamp(offset, len(source))
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
