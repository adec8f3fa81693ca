package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_STRING", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("MONGODB_COLLECTION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "2121", cfg.Server.Port)
	require.Equal(t, "todo", cfg.MongoDB.Database)
	require.Equal(t, "todos", cfg.MongoDB.Collection)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Empty(t, cfg.MongoDB.URI)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, "0.0.0.0:2121", cfg.Addr())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_STRING", "mongodb://localhost:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_DATABASE", "todo_test")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "todo_test", cfg.MongoDB.Database)
	require.Equal(t, "localhost", cfg.Redis.Host)
	require.Equal(t, "6379", cfg.Redis.Port)
	require.True(t, cfg.RateLimit.Enabled)
	require.InDelta(t, 2.5, cfg.RateLimit.RPS, 0.0001)
}

func TestLoadConfig_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("MONGODB_TIMEOUT", "0")

	_, err := LoadConfig()
	require.Error(t, err)
}
