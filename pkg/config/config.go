// Package config defines the configuration surface of the selection
// engine. These are pure data structures; loading lives in yaml.go.
package config

import (
	"fmt"
	"slices"

	"github.com/yaklabco/structsel/pkg/grow"
	"github.com/yaklabco/structsel/pkg/langdetect"
)

// Config holds the tunable knobs of the growth engine.
type Config struct {
	// MaxSteps bounds the iterative walk toward a target node class.
	// It is a safety bound, not a semantic constant.
	MaxSteps int `yaml:"max_steps"`

	// TrimTemplateDelimiters enables the boundary adjustments that trim
	// template-literal delimiters from candidate selections. Off by
	// default.
	TrimTemplateDelimiters bool `yaml:"trim_template_delimiters"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Languages restricts structural selection to these language
	// identifiers. Empty enables every supported language.
	Languages []string `yaml:"languages,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		MaxSteps: grow.DefaultMaxSteps,
		LogLevel: "info",
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	supported := langdetect.Supported()
	for _, lang := range c.Languages {
		if !slices.Contains(supported, lang) {
			return fmt.Errorf("unknown language %q", lang)
		}
	}
	return nil
}

// Enabled reports whether structural selection is enabled for the
// language.
func (c *Config) Enabled(lang string) bool {
	return len(c.Languages) == 0 || slices.Contains(c.Languages, lang)
}

// GrowOptions translates the configuration into grower options.
func (c *Config) GrowOptions() []grow.Option {
	opts := []grow.Option{grow.WithMaxSteps(c.MaxSteps)}
	if c.TrimTemplateDelimiters {
		opts = append(opts, grow.WithAdjustments(grow.TemplateAdjustments()))
	}
	return opts
}
