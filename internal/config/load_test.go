package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Default(), *cfg)
	assert.Empty(t, cfg.Addr, "default address should pick a port automatically")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOMATCH_ADDR", "127.0.0.1:9090")
	t.Setenv("GOMATCH_APP_NAME", "Concentration")
	t.Setenv("GOMATCH_SHUTDOWN_TIMEOUT", "10s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "Concentration", cfg.AppName)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "web", cfg.WebDir)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("web_dir: /srv/gomatch\nshutdown_timeout: 2s\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/gomatch", cfg.WebDir)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("GOMATCH_WEB_DIR", "/tmp/web")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/web", cfg.WebDir)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad address", func(t *testing.T) {
		t.Setenv("GOMATCH_ADDR", "not an address")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid config")
	})
	t.Run("empty app name", func(t *testing.T) {
		cfg := Default()
		cfg.AppName = ""
		assert.Error(t, cfg.Validate())
	})
	t.Run("zero shutdown timeout", func(t *testing.T) {
		cfg := Default()
		cfg.ShutdownTimeout = 0
		assert.Error(t, cfg.Validate())
	})
}
