package cmd_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candydelivery/cmd"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"LOG_LEVEL", "REVALIDATION_SCHEDULE", "MIGRATE_ON_START",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := cmd.LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "5432", config.DBPort)
	assert.Equal(t, "disable", config.DBSslMode)
	assert.Equal(t, "@every 1m", config.RevalidationSchedule)
	assert.True(t, config.MigrateOnStart)

	level, err := config.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "candy")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REVALIDATION_SCHEDULE", "@every 30s")
	t.Setenv("MIGRATE_ON_START", "false")

	config, err := cmd.LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, "@every 30s", config.RevalidationSchedule)
	assert.False(t, config.MigrateOnStart)
	assert.Equal(t, "host=db port=5432 user=candy password=secret dbname=shop sslmode=disable", config.DSN())
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")

	config, err := cmd.LoadConfig([]string{"--port", "7070", "--log-level", "warn", "--migrate=false"})
	require.NoError(t, err)

	assert.Equal(t, "7070", config.HTTPPort)
	assert.Equal(t, "warn", config.LogLevel)
	assert.False(t, config.MigrateOnStart)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	clearEnv(t)

	_, err := cmd.LoadConfig([]string{"--port", "http"})
	require.Error(t, err)

	_, err = cmd.LoadConfig([]string{"--log-level", "loud"})
	require.Error(t, err)

	t.Setenv("MIGRATE_ON_START", "sometimes")
	_, err = cmd.LoadConfig(nil)
	require.Error(t, err)
}
