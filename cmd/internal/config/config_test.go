package config

import (
	"strings"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = strings.Repeat("k", JWTKeyMinLength)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "DATABASE_URL", "DATABASE_PATH", "JWT_KEY",
		"JWT_ISSUER", "JWT_AUDIENCE", "REGISTRY_BASE_URL", "REGISTRY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_KEY", testKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "database.db", cfg.DatabasePath)
	assert.Equal(t, "localize", cfg.JWTIssuer)
	assert.Equal(t, "localize", cfg.JWTAudience)
	assert.Equal(t, "https://www.receitaws.com.br", cfg.RegistryBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RegistryTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_KEY", testKey)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localize@localhost/localize")
	t.Setenv("REGISTRY_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localize@localhost/localize", cfg.DatabaseURL)
	assert.Equal(t, 3*time.Second, cfg.RegistryTimeout)
	assert.Equal(t, log.DEBUG, cfg.Level())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("short key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_KEY", "short")

		_, err := Load()
		assert.ErrorContains(t, err, "JWT_KEY")
	})

	t.Run("bad port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_KEY", testKey)
		t.Setenv("PORT", "seventy")

		_, err := Load()
		assert.ErrorContains(t, err, "PORT")
	})

	t.Run("bad timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_KEY", testKey)
		t.Setenv("REGISTRY_TIMEOUT", "ten")

		_, err := Load()
		assert.ErrorContains(t, err, "REGISTRY_TIMEOUT")
	})
}

func TestLevel(t *testing.T) {
	assert.Equal(t, log.WARN, (&Config{LogLevel: "warn"}).Level())
	assert.Equal(t, log.ERROR, (&Config{LogLevel: "error"}).Level())
	assert.Equal(t, log.INFO, (&Config{LogLevel: "verbose"}).Level())
}
