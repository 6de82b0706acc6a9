package patternctlcfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patternctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "human", cfg.Log.Format)
	assert.Equal(t, "-", cfg.Log.Output)
	assert.Equal(t, 7, cfg.Log.RetentionDays)
	assert.Equal(t, "/ws", cfg.Serve.Path)
	assert.Contains(t, cfg.DB.URL, "sqlite:")
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  url: wss://k8s-manager.example.com/ws
  username: ops
  timeout: 5s
  header:
    Authorization: Bearer abc
db:
  url: "memory:"
log:
  format: json
  retentionDays: 3
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "wss://k8s-manager.example.com/ws", cfg.Server.URL)
	assert.Equal(t, "ops", cfg.Server.Username)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "Bearer abc", cfg.Server.Header["authorization"])
	assert.Equal(t, "memory:", cfg.DB.URL)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Log.RetentionDays)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "server:\n  url: ws://file:1/ws\nlog:\n  format: text\n")
	t.Setenv("PATTERNCTL_SERVER_URL", "ws://env:2/ws")
	t.Setenv("PATTERNCTL_LOG_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("server-url", "", "")
	flags.String("log-format", "human", "")
	require.NoError(t, flags.Parse([]string{"--server-url", "ws://flag:3/ws"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "ws://flag:3/ws", cfg.Server.URL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "server:\n  url: http://example.com\n")
	_, err := Load(path, nil)
	assert.ErrorContains(t, err, "server:")
}
