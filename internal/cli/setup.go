package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/structsel/internal/configloader"
	"github.com/yaklabco/structsel/pkg/config"
	"github.com/yaklabco/structsel/pkg/engine"
	"github.com/yaklabco/structsel/pkg/grow"
	"github.com/yaklabco/structsel/pkg/langdetect"
	"github.com/yaklabco/structsel/pkg/parser/markdown"
	"github.com/yaklabco/structsel/pkg/parser/treesitter"
	"github.com/yaklabco/structsel/pkg/selection"
)

// loadConfig resolves the configuration: the --config path when given,
// otherwise discovery through the project and user locations.
func loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: flags.configPath,
	})
	if err != nil {
		return nil, err
	}
	return result.Config, nil
}

// newStructuralRegistry registers the structural growth strategy for
// every supported language.
func newStructuralRegistry(cfg *config.Config) *engine.Registry {
	grower := grow.New(cfg.GrowOptions()...)
	ts := treesitter.New()

	registry := engine.NewRegistry()
	for _, lang := range []string{
		langdetect.LangTypeScript,
		langdetect.LangTypeScriptReact,
		langdetect.LangJavaScript,
		langdetect.LangJavaScriptReact,
	} {
		if !cfg.Enabled(lang) {
			continue
		}
		registry.Register(lang, engine.NewStructural(lang, ts, grower))
	}
	if cfg.Enabled(langdetect.LangMarkdown) {
		registry.Register(langdetect.LangMarkdown,
			engine.NewStructural(langdetect.LangMarkdown, markdown.New(), grower))
	}
	return registry
}

// newAttributeRegistry registers the attribute fan-out strategy for the
// languages with markup elements.
func newAttributeRegistry(cfg *config.Config) *engine.Registry {
	grower := grow.New(cfg.GrowOptions()...)
	ts := treesitter.New()

	registry := engine.NewRegistry()
	for _, lang := range []string{
		langdetect.LangTypeScript,
		langdetect.LangTypeScriptReact,
		langdetect.LangJavaScript,
		langdetect.LangJavaScriptReact,
	} {
		if !cfg.Enabled(lang) {
			continue
		}
		registry.Register(lang, engine.NewAttributeFanOut(lang+"-attributes", ts, grower))
	}
	return registry
}

// loadDocument reads the file and detects its language.
func loadDocument(path string) (engine.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return engine.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return engine.Document{
		Path:     path,
		Language: langdetect.Detect(path, content),
		Content:  content,
	}, nil
}

// parseSelections converts --at values into a selection set. Each value
// is either a single offset ("12", a cursor) or an anchor:active pair
// ("3:9", a directed selection).
func parseSelections(values []string) (selection.Set, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one --at offset is required")
	}

	set := make(selection.Set, 0, len(values))
	for _, value := range values {
		anchor, active, ok := strings.Cut(value, ":")
		a, err := strconv.Atoi(anchor)
		if err != nil {
			return nil, fmt.Errorf("invalid --at value %q: %w", value, err)
		}
		if !ok {
			set = append(set, selection.Cursor(a))
			continue
		}
		b, err := strconv.Atoi(active)
		if err != nil {
			return nil, fmt.Errorf("invalid --at value %q: %w", value, err)
		}
		set = append(set, selection.New(a, b))
	}
	return set, nil
}
