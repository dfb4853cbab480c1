package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/okoval/bookstore/pkg/database"
)

// Config holds the runtime configuration for the bookstore service
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	Database database.Config

	JaegerEndpoint string
	TracingEnabled bool

	SeedDemoData bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is picked up first so local development does not need exported
// variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "bookstore"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),

		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "bookstore"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),
	}
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
