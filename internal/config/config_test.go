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
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ADMINCTL_TOKEN_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.Equal(t, ConfigPath("credentials.db"), cfg.DBPath)
	assert.False(t, cfg.Debug)
}

func TestLoadRequiresTokenKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ADMINCTL_TOKEN_KEY", "")
	os.Unsetenv("ADMINCTL_TOKEN_KEY")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadEnvFileOverrides(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("ADMINCTL_TOKEN_KEY", "secret")

	dir := filepath.Join(configHome, AppName)
	require.NoError(t, os.MkdirAll(dir, 0700))
	envFile := filepath.Join(dir, EnvFileName)
	require.NoError(t, os.WriteFile(envFile, []byte("ADMINCTL_API_BASE_URL=https://admin.example.com\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://admin.example.com", cfg.APIBaseURL)
}

func TestConfigDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", AppName), ConfigDir())
}
