package config

import (
	"os"
	"strings"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "docuforge-api"

// Config holds the environment-backed server settings.
type Config struct {
	Host        string
	Port        string
	Environment string
	CORSOrigins []string
}

// Load reads configuration from the environment with development
// defaults.
func Load() *Config {
	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "4000"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGIN", "http://127.0.0.1:3000,http://localhost:3000")),
	}
}

// Addr returns the host:port bind address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
