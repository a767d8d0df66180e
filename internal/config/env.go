package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the env and envPrefix struct tags, with prefix prepended to every name.
// Server settings use no prefix, the client uses VIBEVAULT_.
func parseEnv[T any](cfg *T, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
