package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromDir(t *testing.T, dir string) *Config {
	t.Helper()
	cfg, err := LoadConfigFrom(viper.New(), dir)
	require.NoError(t, err)
	return cfg
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := loadFromDir(t, t.TempDir())

	assert.Equal(t, "0.0.0.0", cfg.Server.Addr)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://localhost:8000", cfg.Client.URL)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddr())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  addr: 127.0.0.1
  port: 9090
  mode: debug
  shutdown_timeout: 3s
log:
  level: debug
  format: json
client:
  url: http://ml:8000
  timeout: 2s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg := loadFromDir(t, dir)
	assert.Equal(t, "127.0.0.1:9090", cfg.ListenAddr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "http://ml:8000", cfg.Client.URL)
	assert.Equal(t, 2*time.Second, cfg.Client.Timeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TASKTAGGER_SERVER_PORT", "9191")
	t.Setenv("TASKTAGGER_LOG_LEVEL", "warn")
	t.Setenv("ML_URL", "http://ml.internal:8000")

	cfg := loadFromDir(t, t.TempDir())
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "http://ml.internal:8000", cfg.Client.URL)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unterminated"), 0o600))

	_, err := LoadConfigFrom(viper.New(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfigFrom(viper.New(), t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Port Zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"Port Too Large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"Bad Mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"Zero Shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "server.shutdown_timeout"},
		{"Bad Level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"Bad Format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"Bad Scheme", func(c *Config) { c.Client.URL = "ftp://ml:8000" }, "client.url"},
		{"No Host", func(c *Config) { c.Client.URL = "http://" }, "client.url"},
		{"Zero Timeout", func(c *Config) { c.Client.Timeout = 0 }, "client.timeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
