// Package langdetect maps a document's filename (and, as a fallback,
// its content) to the language identifier used by the strategy
// registry. The filename is used only to select the grammar dialect;
// unknown languages return an empty identifier, which routes to the
// host-native behavior.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifiers for the registered strategies. The names follow
// the common editor convention.
const (
	LangTypeScript      = "typescript"
	LangTypeScriptReact = "typescriptreact"
	LangJavaScript      = "javascript"
	LangJavaScriptReact = "javascriptreact"
	LangMarkdown        = "markdown"
)

// Supported returns every language identifier that can be detected.
func Supported() []string {
	return []string{
		LangTypeScript,
		LangTypeScriptReact,
		LangJavaScript,
		LangJavaScriptReact,
		LangMarkdown,
	}
}

// Detect returns the language identifier for the given filename and
// content, or "" when the language is not recognized.
func Detect(path string, content []byte) string {
	// The dialect split inside a family hangs off the extension alone.
	if lang := byExtension(path); lang != "" {
		return lang
	}

	if enry.IsBinary(content) {
		return ""
	}

	// A recognized but unsupported language must stay unsupported, not
	// get squeezed into the nearest supported one by the classifier.
	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return normalize(lang)
	}

	// Nothing recognized at all: classify by content among the
	// supported set.
	if lang, safe := enry.GetLanguageByClassifier(content, []string{
		"TypeScript", "JavaScript", "Markdown",
	}); safe {
		return normalize(lang)
	}

	return ""
}

func byExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return LangTypeScript
	case ".tsx":
		return LangTypeScriptReact
	case ".js", ".mjs", ".cjs":
		return LangJavaScript
	case ".jsx":
		return LangJavaScriptReact
	case ".md", ".markdown":
		return LangMarkdown
	default:
		return ""
	}
}

// normalize converts go-enry language names to registry identifiers.
func normalize(lang string) string {
	switch lang {
	case "TypeScript":
		return LangTypeScript
	case "TSX":
		return LangTypeScriptReact
	case "JavaScript":
		return LangJavaScript
	case "JSX":
		return LangJavaScriptReact
	case "Markdown":
		return LangMarkdown
	default:
		return ""
	}
}
