package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/structsel/internal/ui/pretty"
	"github.com/yaklabco/structsel/pkg/engine"
	"github.com/yaklabco/structsel/pkg/langdetect"
	"github.com/yaklabco/structsel/pkg/parser/markdown"
	"github.com/yaklabco/structsel/pkg/parser/treesitter"
)

func newInspectCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the syntax tree used for selection growth",
		Long: `Parse the file and print the normalized syntax tree: one node per
line with its kind, node class, and byte span. Useful for seeing why a
selection grows the way it does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], root)
		},
	}
	return cmd
}

func runInspect(cmd *cobra.Command, path string, root *rootFlags) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	var parser engine.Parser
	switch doc.Language {
	case langdetect.LangTypeScript, langdetect.LangTypeScriptReact,
		langdetect.LangJavaScript, langdetect.LangJavaScriptReact:
		parser = treesitter.New()
	case langdetect.LangMarkdown:
		parser = markdown.New()
	default:
		return fmt.Errorf("unsupported language %q for %s", doc.Language, doc.Path)
	}

	tree, err := parser.Parse(cmd.Context(), doc.Path, doc.Content)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n",
		styles.FilePath.Render(doc.Path), doc.Language)
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatTree(tree))
	return nil
}
