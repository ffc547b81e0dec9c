package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/structsel/pkg/config"
)

// envVarPrefix is the prefix for all structsel environment variables.
const envVarPrefix = "STRUCTSEL_"

// applyEnv overlays STRUCTSEL_* environment variables onto the
// configuration. Unset variables leave the current value untouched.
func applyEnv(cfg *config.Config) error {
	if value, ok := os.LookupEnv(envVarPrefix + "MAX_STEPS"); ok {
		steps, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse %sMAX_STEPS: %w", envVarPrefix, err)
		}
		cfg.MaxSteps = steps
	}

	if value, ok := os.LookupEnv(envVarPrefix + "TRIM_TEMPLATE_DELIMITERS"); ok {
		trim, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse %sTRIM_TEMPLATE_DELIMITERS: %w", envVarPrefix, err)
		}
		cfg.TrimTemplateDelimiters = trim
	}

	if value, ok := os.LookupEnv(envVarPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = value
	}

	return nil
}
