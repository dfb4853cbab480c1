package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "bookstore", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.False(t, cfg.TracingEnabled)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.TracingEnabled)
	assert.False(t, cfg.IsDevelopment())
}

func TestGetEnvBool_Garbage(t *testing.T) {
	t.Setenv("TRACING_ENABLED", "not-a-bool")
	assert.False(t, getEnvBool("TRACING_ENABLED", false))
	assert.True(t, getEnvBool("TRACING_ENABLED", true))
}
