package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"CLIENTS_DATABASE_DRIVER", "CLIENTS_DATABASE_FILE", "CLIENTS_DATABASE_URL", "CLIENTS_SEED",
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD", "READ_HEADER_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, Config{
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        "clients.db",
		Seed:                true,
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
		ReadHeaderTimeout:   3 * time.Second,
	}, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CLIENTS_DATABASE_DRIVER", "postgres")
	t.Setenv("CLIENTS_DATABASE_URL", "postgres://u:p@db:5432/clients?sslmode=disable")
	t.Setenv("CLIENTS_SEED", "false")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30")
	t.Setenv("READ_HEADER_TIMEOUT", "500ms")

	cfg := LoadConfig()
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, "postgres://u:p@db:5432/clients?sslmode=disable", cfg.DatabaseURL)
	require.False(t, cfg.Seed)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 500*time.Millisecond, cfg.ReadHeaderTimeout)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("CLIENTS_SEED", "maybe")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.Seed)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}
