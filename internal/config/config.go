package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars. It is built once
// at startup and passed explicitly to the components that need it; nothing
// reads the environment after Load returns.
type Config struct {
	Port         string
	DBPath       string
	RatesBaseURL string
	RatesTimeout time.Duration
	LogLevel     string
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Every setting has a usable default, so Load cannot fail.
func Load() Config {
	cfg := Config{
		Port:         fallback(os.Getenv("PORT"), "8080"),
		DBPath:       fallback(os.Getenv("FXLEDGER_DB_PATH"), "fxledger.db"),
		RatesBaseURL: fallback(os.Getenv("FXLEDGER_RATES_URL"), "https://api.frankfurter.dev/v1"),
		LogLevel:     fallback(os.Getenv("FXLEDGER_LOG_LEVEL"), "info"),
		RatesTimeout: 10 * time.Second,
	}

	if secs, err := strconv.Atoi(fallback(os.Getenv("FXLEDGER_RATES_TIMEOUT_SECONDS"), "10")); err == nil && secs > 0 {
		cfg.RatesTimeout = time.Duration(secs) * time.Second
	}

	return cfg
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
