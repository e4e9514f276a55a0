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
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.yaml")
	data := []byte("host: tcp://10.0.0.5:2376\ntls_verify: true\nstats_interval: 2s\nframe_interval: 250ms\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "tcp://10.0.0.5:2376", cfg.Host)
	assert.True(t, cfg.TLSVerify)
	assert.Equal(t, 2*time.Second, cfg.StatsInterval)
	assert.Equal(t, time.Second, cfg.ListInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadGlobalFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, GlobalConfigFile), []byte("list_interval: 3s\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.ListInterval)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DOCKERDASH_HOST", "tcp://remote:2375")
	t.Setenv("DOCKERDASH_LIST_INTERVAL", "5s")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "tcp://remote:2375", cfg.Host)
	assert.Equal(t, 5*time.Second, cfg.ListInterval)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"fast list", func(c *Config) { c.ListInterval = 500 * time.Millisecond }, false},
		{"fast stats", func(c *Config) { c.StatsInterval = 0 }, false},
		{"zero frame", func(c *Config) { c.FrameInterval = 0 }, false},
		{"slow frame", func(c *Config) { c.FrameInterval = 2 * time.Second }, false},
		{"frame at 1s", func(c *Config) { c.FrameInterval = time.Second }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, false},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, false},
		{"upper level", func(c *Config) { c.LogLevel = "WARN" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
