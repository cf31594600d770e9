package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGet_Defaults(t *testing.T) {
	conf, err := Get(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.exchange.coinbase.com", conf.BaseURL)
	assert.Equal(t, 3*time.Second, conf.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, conf.KeyWait)
	assert.Equal(t, 2*time.Second, conf.RefreshInterval)
	assert.Equal(t, 2*time.Second, conf.NonInteractiveWait)
	assert.Equal(t, 1, conf.Concurrency)
	assert.Empty(t, conf.LogFile)
	assert.Equal(t, "info", conf.LogLevel)
	assert.True(t, conf.ShowBanner)
	assert.False(t, conf.Setup)
}

func TestGet_Flags(t *testing.T) {
	conf, err := Get([]string{
		"--base-url", "http://localhost:8080",
		"--timeout", "1s",
		"--key-wait", "250ms",
		"--interval", "5s",
		"--non-interactive-wait", "1s",
		"--concurrency", "4",
		"--log-level", "debug",
		"--no-banner",
		"--setup",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", conf.BaseURL)
	assert.Equal(t, time.Second, conf.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, conf.KeyWait)
	assert.Equal(t, 5*time.Second, conf.RefreshInterval)
	assert.Equal(t, time.Second, conf.NonInteractiveWait)
	assert.Equal(t, 4, conf.Concurrency)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.False(t, conf.ShowBanner)
	assert.True(t, conf.Setup)
}

func TestGet_Yaml(t *testing.T) {
	path := writeConfig(t, `
base_url: http://quotes.local
request_timeout: 2s
refresh_interval: 10s
concurrency: 2
show_banner: false
`)

	t.Run("file values with defaults for the rest", func(t *testing.T) {
		conf, err := Get([]string{"--config", path})
		require.NoError(t, err)

		assert.Equal(t, "http://quotes.local", conf.BaseURL)
		assert.Equal(t, 2*time.Second, conf.RequestTimeout)
		assert.Equal(t, 10*time.Second, conf.RefreshInterval)
		assert.Equal(t, 500*time.Millisecond, conf.KeyWait)
		assert.Equal(t, 2, conf.Concurrency)
		assert.False(t, conf.ShowBanner)
	})

	t.Run("explicit flags override the file", func(t *testing.T) {
		conf, err := Get([]string{"--config", path, "--concurrency", "3", "--interval", "1s"})
		require.NoError(t, err)

		assert.Equal(t, 3, conf.Concurrency)
		assert.Equal(t, time.Second, conf.RefreshInterval)
		assert.Equal(t, 2*time.Second, conf.RequestTimeout)
	})
}

func TestGet_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--pair", "BTC_USD"}},
		{"missing file", []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"bad yaml", []string{"--config", writeConfig(t, "concurrency: [")}},
		{"bad duration in yaml", []string{"--config", writeConfig(t, "key_wait: soon")}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"negative interval", []string{"--interval", "-1s"}},
		{"zero concurrency", []string{"--concurrency", "0"}},
		{"relative url", []string{"--base-url", "/products"}},
		{"bad log level", []string{"--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Get(tt.args)
			require.Error(t, err)
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	t.Run("no file gives a nop logger", func(t *testing.T) {
		logger, err := Default().NewLogger()
		require.NoError(t, err)
		require.NotNil(t, logger)
		logger.Info("discarded")
	})

	t.Run("logs go to the file", func(t *testing.T) {
		conf := Default()
		conf.LogFile = filepath.Join(t.TempDir(), "btcterm.log")

		logger, err := conf.NewLogger()
		require.NoError(t, err)
		logger.Info("hello from test")
		_ = logger.Sync()

		data, err := os.ReadFile(conf.LogFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from test")
	})

	t.Run("debug is filtered at info level", func(t *testing.T) {
		conf := Default()
		conf.LogFile = filepath.Join(t.TempDir(), "btcterm.log")

		logger, err := conf.NewLogger()
		require.NoError(t, err)
		logger.Debug("hidden")
		logger.Info("shown")
		_ = logger.Sync()

		data, err := os.ReadFile(conf.LogFile)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
	})
}
