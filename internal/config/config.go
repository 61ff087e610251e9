// Package config resolves process configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the resolved settings for a guessr process.
type Config struct {
	// DBPath is the SQLite file location. Empty means "use the default
	// XDG path"; the store resolves that.
	DBPath string

	// LogLevel mirrors LOG_LEVEL for visibility in diagnostics.
	LogLevel string
}

// Load reads an optional .env file and then the environment. A missing
// .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:   os.Getenv("GUESSR_DB"),
		LogLevel: os.Getenv("LOG_LEVEL"),
	}
}
