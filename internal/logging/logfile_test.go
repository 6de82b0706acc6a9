package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFileName(t *testing.T) {
	tests := []struct {
		time time.Time
		want string
	}{
		{time.Date(2025, 12, 13, 9, 51, 5, 123000000, time.UTC), "patternctl-20251213-095105-123.log"},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "patternctl-20250101-000000-000.log"},
		{time.Date(2025, 6, 15, 12, 30, 45, 456789000, time.UTC), "patternctl-20250615-123045-456.log"},
		{time.Date(2025, 6, 15, 21, 30, 45, 0, time.FixedZone("JST", 9*3600)), "patternctl-20250615-123045-000.log"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logFileName(tt.time))
	}
}

func TestOpenLogFileDestinations(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	lf, err := openLogFile("None", dir, now)
	require.NoError(t, err)
	assert.Empty(t, lf.Path)
	assert.NotNil(t, lf.Writer())
	assert.NoError(t, lf.Close())

	lf, err = openLogFile(OutputStderr, dir, now)
	require.NoError(t, err)
	assert.Empty(t, lf.Path)
	assert.Same(t, os.Stderr, lf.Writer())
	assert.NoError(t, lf.Close())

	lf, err = openLogFile("", dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "patternctl-20250301-080000-000.log"), lf.Path)
	require.NoError(t, lf.Close())
	assert.FileExists(t, lf.Path)

	lf, err = openLogFile("nested/run.log", dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "run.log"), lf.Path)
	require.NoError(t, lf.Close())

	abs := filepath.Join(t.TempDir(), "abs.log")
	lf, err = openLogFile(abs, dir, now)
	require.NoError(t, err)
	assert.Equal(t, abs, lf.Path)
	require.NoError(t, lf.Close())
}

func TestPruneLogFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch := func(name string, age time.Duration) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		require.NoError(t, os.Chtimes(path, now.Add(-age), now.Add(-age)))
		return path
	}
	expired := touch("patternctl-20250101-000000-000.log", 10*24*time.Hour)
	recent := touch("patternctl-20250109-000000-000.log", 24*time.Hour)
	foreign := touch("other.log", 10*24*time.Hour)

	n, err := pruneLogFiles(dir, 7, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoFileExists(t, expired)
	assert.FileExists(t, recent)
	assert.FileExists(t, foreign)

	n, err = pruneLogFiles(dir, 0, now.Add(365*24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.FileExists(t, recent)

	n, err = pruneLogFiles(filepath.Join(dir, "missing"), 7, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSetupWritesCommandLine(t *testing.T) {
	dir := t.TempDir()
	l, lf, err := Setup(context.Background(), &LogConfig{Dir: dir, Level: "debug", RetentionDays: 7}, []string{"patternctl", "call", "get/user"})
	require.NoError(t, err)
	l.Debug(context.Background(), "after")
	require.NoError(t, lf.Close())

	b, err := os.ReadFile(lf.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "patternctl call get/user")
	assert.Contains(t, lines[0], `"pruned":0`)
	assert.Contains(t, lines[1], `"msg":"after"`)
}

func TestSetupPrunesExpiredFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "patternctl-20240101-000000-000.log")
	require.NoError(t, os.WriteFile(old, nil, 0o644))
	past := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(old, past, past))

	_, lf, err := Setup(context.Background(), &LogConfig{Dir: dir, RetentionDays: 7}, nil)
	require.NoError(t, err)
	require.NoError(t, lf.Close())
	assert.NoFileExists(t, old)
	b, err := os.ReadFile(lf.Path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pruned":1`)
}

func TestSetupStderrSkipsCommandLine(t *testing.T) {
	_, lf, err := Setup(context.Background(), &LogConfig{Output: OutputStderr, Format: "human"}, []string{"patternctl"})
	require.NoError(t, err)
	assert.Empty(t, lf.Path)
	assert.NoError(t, lf.Close())
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, _, err := Setup(context.Background(), &LogConfig{Output: OutputNone, Level: "chatty"}, nil)
	assert.Error(t, err)
}
