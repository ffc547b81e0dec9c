// Package treesitter provides a Parser implementation for the
// TypeScript language family using the tree-sitter bindings. The
// grammar dialect is chosen from the file extension; the resulting
// sitter tree is converted into the engine's syntax tree and closed
// before returning, so each operation works on a fresh, owned value.
package treesitter

import (
	"context"
	"fmt"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/yaklabco/structsel/pkg/syntax"
)

// Parser parses TypeScript-family sources. A new sitter parser is
// created per call, so Parser is safe for concurrent use.
type Parser struct{}

// New creates a tree-sitter backed parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts source text into a syntax tree. path selects the
// grammar dialect only: .tsx uses the TSX grammar, .js/.jsx/.mjs/.cjs
// the JavaScript grammar, everything else plain TypeScript.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(path))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("tree-sitter returned no root node for %s", path)
	}

	root := convertTree(rootNode, len(content))
	return &syntax.Tree{Root: root, Source: content}, nil
}

func languageFor(path string) *sitter.Language {
	switch filepath.Ext(path) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage()
	default:
		return typescript.GetLanguage()
	}
}
