package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultDriver          = DriverSQLite
	defaultDSN             = "file:vibevault.db"
	defaultMaxOpenConns    = 10
	defaultTokenIssuer     = "vibevault"
	defaultTokenSignKey    = "your-secret-key-here-should-be-at-least-256-bits-long-for-hs256"
	defaultTokenDuration   = 24 * time.Hour
	defaultVersion         = "0.0.1-SNAPSHOT"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// defaultConfig returns the lowest-priority configuration layer. Every value
// here can be overridden by env, flags or the JSON file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     defaultTokenSignKey,
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			Version:          defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver:       defaultDriver,
				DSN:          defaultDSN,
				MaxOpenConns: defaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
