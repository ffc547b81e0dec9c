// Package configloader resolves the effective configuration from the
// standard locations: an explicit --config path, a project config found
// by searching upward from the working directory, a user config under
// XDG_CONFIG_HOME, and STRUCTSEL_* environment variables.
package configloader

import (
	"context"
	"fmt"

	"github.com/yaklabco/structsel/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, discovery is skipped entirely.
	ExplicitPath string

	// IgnoreEnv skips the environment variable overlay.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and its provenance.
type LoadResult struct {
	// Config is the final configuration.
	Config *config.Config

	// Source is the file the configuration came from, or empty when
	// only defaults and environment variables applied.
	Source string
}

// Load resolves the effective configuration. Precedence (highest to
// lowest): environment variables, the explicit path, the project
// config, the user config, built-in defaults.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	source, err := resolveSource(ctx, opts)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if source != "" {
		cfg, err = config.Load(source)
		if err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		if source == "" {
			return nil, err
		}
		return nil, fmt.Errorf("config %s: %w", source, err)
	}

	return &LoadResult{Config: cfg, Source: source}, nil
}

func resolveSource(ctx context.Context, opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		return opts.ExplicitPath, nil
	}

	project, err := FindProjectConfig(ctx, opts.WorkingDir)
	if err != nil {
		return "", err
	}
	if project != "" {
		return project, nil
	}

	return findUserConfig(), nil
}
