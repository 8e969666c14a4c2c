package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvDefault(t *testing.T) {
	t.Setenv("SHOPFRONT_TEST_KEY", "")
	require.Equal(t, "fallback", EnvDefault("SHOPFRONT_TEST_KEY", "fallback"))

	t.Setenv("SHOPFRONT_TEST_KEY", "explicit")
	require.Equal(t, "explicit", EnvDefault("SHOPFRONT_TEST_KEY", "fallback"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("SHOPFRONT_TEST_PORT", "")
	require.Equal(t, 8080, EnvIntDefault("SHOPFRONT_TEST_PORT", 8080))

	t.Setenv("SHOPFRONT_TEST_PORT", "9090")
	require.Equal(t, 9090, EnvIntDefault("SHOPFRONT_TEST_PORT", 8080))

	t.Setenv("SHOPFRONT_TEST_PORT", "not a number")
	require.Equal(t, 8080, EnvIntDefault("SHOPFRONT_TEST_PORT", 8080))
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("SHOPFRONT_API_URL", "http://shop.example:9000/api")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "not-the-default")
	t.Setenv("DATABASE_URL", "postgres://shop@db/shop")

	cfg := Load()
	require.Equal(t, "http://shop.example:9000/api", cfg.APIBaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []byte("not-the-default"), cfg.JWTSecret)
	require.Equal(t, "postgres://shop@db/shop", cfg.DatabaseURL)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOPFRONT_API_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FIXTURE_PORT", "")

	cfg := Load()
	require.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 8080, cfg.FixturePort)
	require.NotEmpty(t, cfg.StateFile)
}
