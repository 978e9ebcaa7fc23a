package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache_config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleConfig = `{
  "host": "cache.internal",
  "port": 11322,
  "password": "s3cret",
  "caches": {
    "sessions": {
      "enabled": true,
      "description": "login sessions",
      "memory_size": "50MB",
      "ttl_hours": 2,
      "l1_expiration_minutes": 30,
      "persistence": {
        "enabled": true,
        "type": "file-store",
        "path": "sessions",
        "shared": true,
        "passivation": false,
        "write_behind": {
          "enabled": true,
          "modification_queue_size": 1024,
          "fail_silently": false
        }
      }
    },
    "scratch": {
      "enabled": false,
      "l1_expiration_hours": 1
    }
  }
}`

func TestLoadFileOverDefaults(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "cache.internal", cfg.Host)
	assert.Equal(t, 11322, cfg.Port)
	assert.Equal(t, "admin", cfg.Username) // default survives
	assert.Equal(t, "s3cret", cfg.Password)
	assert.Equal(t, "hotrod", cfg.Protocol)
	assert.Equal(t, "http://cache.internal:11322/rest/v2", cfg.RESTBaseURL())
	assert.Equal(t, "cache.internal:11322", cfg.HotRodAddr())

	sessions, ok := cfg.Cache("sessions")
	require.True(t, ok)
	assert.True(t, sessions.Enabled)
	assert.Equal(t, "50MB", sessions.MemorySize)
	assert.Equal(t, 2, sessions.TTLHours)
	require.NotNil(t, sessions.L1ExpirationMinutes)
	assert.Equal(t, 30, *sessions.L1ExpirationMinutes)
	assert.Nil(t, sessions.L1ExpirationHours)

	require.NotNil(t, sessions.Persistence)
	assert.Equal(t, "file-store", sessions.Persistence.Type)
	assert.True(t, sessions.Persistence.Shared)
	require.NotNil(t, sessions.Persistence.WriteBehind)
	assert.Equal(t, 1024, sessions.Persistence.WriteBehind.ModificationQueueSize)

	scratch, ok := cfg.Cache("scratch")
	require.True(t, ok)
	assert.False(t, scratch.Enabled)
	require.NotNil(t, scratch.L1ExpirationHours)
	assert.Equal(t, 1, *scratch.L1ExpirationHours)
	assert.Nil(t, scratch.Persistence)

	assert.Equal(t, []string{"scratch", "sessions"}, cfg.CacheNames())
	assert.True(t, cfg.Enabled("sessions"))
	assert.False(t, cfg.Enabled("scratch"))
	assert.False(t, cfg.Enabled("missing"))
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("CACHE_HOST", "override.example")
	t.Setenv("CACHE_PORT", "9999")
	t.Setenv("CACHE_USERNAME", "svc")
	t.Setenv("CACHE_PROTOCOL", "rest")

	cfg, err := NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "override.example", cfg.Host)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "svc", cfg.Username)
	assert.Equal(t, "s3cret", cfg.Password) // file value kept, no env set
	assert.Equal(t, "rest", cfg.Protocol)
}

func TestUnknownEnvVariablesIgnored(t *testing.T) {
	path := writeConfig(t, `{"host":"h","port":1}`)
	t.Setenv("CACHE_SOMETHING_ELSE", "junk")

	cfg, err := NewLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "h", cfg.Host)
}

func TestMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMalformedFile(t *testing.T) {
	path := writeConfig(t, `{"host": `)
	_, err := NewLoader(path).Load(context.Background())
	require.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(path).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
