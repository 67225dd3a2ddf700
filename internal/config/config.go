package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Reference document; empty means roc_syntax.roc beside the executable.
	ReferencePath string

	// Transport: "stdio" (MCP over stdin/stdout) or "http"
	Transport string

	// HTTP transport
	Port   string
	APIKey string // optional; empty disables bearer auth on /api routes

	// Logging
	LogLevel string
}

func Load() Config {
	return Config{
		ReferencePath: os.Getenv("REFERENCE_PATH"),
		Transport:     envOr("TRANSPORT", "stdio"),
		Port:          envOr("PORT", "8091"),
		APIKey:        os.Getenv("ROCSYNTAX_API_KEY"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
	}
}

func (c Config) Validate() error {
	switch c.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("TRANSPORT must be \"stdio\" or \"http\", got %q", c.Transport)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
