package config

import "time"

const clientEnvPrefix = "VIBEVAULT_"

// ClientConfig holds settings of the command-line client. It is read from
// VIBEVAULT_* environment variables; command flags may override the values
// afterwards.
type ClientConfig struct {
	// ServerURL is the base URL of the vibe-vault server.
	// Env: VIBEVAULT_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`

	// Token is a previously issued bearer token.
	// Env: VIBEVAULT_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: VIBEVAULT_TIMEOUT
	RequestTimeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// GetClientConfig builds and validates the client configuration from the
// environment.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg, clientEnvPrefix); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate re-checks the configuration after flags were applied.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
