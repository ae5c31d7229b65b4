package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override, e.g. ZOMBIES_WINDOW_WIDTH
// Section prefixes come from the envPrefix tags on Settings
const EnvPrefix = "ZOMBIES_"

// applyEnv overlays ZOMBIES_* variables onto s
// A nil environ reads the process environment; unset variables leave s untouched
func applyEnv(s *Settings, environ map[string]string) error {
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(s, opts); err != nil {
		return fmt.Errorf("env %s*: %w", EnvPrefix, err)
	}
	return nil
}
