package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "CORS_ORIGIN", "MONGO_URI", "MONGO_DATABASE", "MONGO_CONNECT_TIMEOUT",
		"MONGO_OP_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "HASH_PASSWORDS", "RATE_LIMIT_RPS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, ":5000", cfg.Addr())
	require.Equal(t, "http://localhost:3000", cfg.Server.CORSOrigin)
	require.Equal(t, "patient_monitor", cfg.MongoDB.Database)
	require.Equal(t, 10*time.Second, cfg.MongoDB.ConnectTimeout)
	require.Zero(t, cfg.MongoDB.OpTimeout)
	require.False(t, cfg.Auth.HashPasswords)
	require.Zero(t, cfg.RateLimit.RPS)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "monitor_test")
	t.Setenv("MONGO_OP_TIMEOUT", "3s")
	t.Setenv("HASH_PASSWORDS", "true")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("RATE_LIMIT_RPS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8081", cfg.Server.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "monitor_test", cfg.MongoDB.Database)
	require.Equal(t, 3*time.Second, cfg.MongoDB.OpTimeout)
	require.True(t, cfg.Auth.HashPasswords)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, 5.0, cfg.RateLimit.RPS)
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")
	_, err := Load()
	require.Error(t, err)
}
