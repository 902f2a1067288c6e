package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  path: /tmp/test.db
ticket:
  max_id_retries: 5
`)
	t.Setenv("SETRACKER_SERVER_PORT", "9090")
	t.Setenv("SETRACKER_LOGGER_LEVEL", "debug")

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Ticket.MaxIDRetries)
	assert.Equal(t, "SE", cfg.Ticket.IDPrefix)
	assert.Equal(t, "database", cfg.Ticket.SequenceBackend)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Email.Enabled())
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverridesServerMode(t *testing.T) {
	path := writeConfig(t, "server:\n  mode: debug\n")

	cfg, err := Load("release", path)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown driver",
			content: "database:\n  driver: oracle\n",
			wantErr: "unsupported database driver",
		},
		{
			name:    "redis sequence without redis",
			content: "ticket:\n  sequence_backend: redis\n",
			wantErr: "redis.host is empty",
		},
		{
			name:    "unknown sequence backend",
			content: "ticket:\n  sequence_backend: etcd\n",
			wantErr: "unsupported ticket sequence backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_RedisSequenceWithRedis(t *testing.T) {
	path := writeConfig(t, `
redis:
  host: cache.internal
ticket:
  sequence_backend: redis
`)
	cfg, err := Load("", path)
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.GetAddr())
}
