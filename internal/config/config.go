// Package config loads process configuration from an optional .env file
// and the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Port is the listening port for both the websocket and HTTP surface.
	Port string
	Log  LoggingConfig
}

type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string
	// Format is "console" or "json".
	Format string
}

// Load reads .env if present, then the environment. Every setting has a
// default, so Load never fails on missing values.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getenv("PORT", "8080"),
		Log: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "console"),
		},
	}
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
