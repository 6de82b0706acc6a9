package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"": slog.LevelInfo, "debug": slog.LevelDebug, "WARN": slog.LevelWarn, "Error": slog.LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWithWriterFormats(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter("json", slog.LevelInfo, &buf)
	require.NoError(t, err)
	l.With("datagramId", "d1").Info(context.Background(), "dispatched", "pattern", "get/user")
	assert.Contains(t, buf.String(), `"datagramId":"d1"`)
	assert.Contains(t, buf.String(), `"pattern":"get/user"`)

	buf.Reset()
	l, err = NewWithWriter("human", slog.LevelWarn, &buf)
	require.NoError(t, err)
	l.Info(context.Background(), "hidden")
	l.Warnf(context.Background(), "shown %d", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 1")
	assert.NotContains(t, buf.String(), "time=")

	_, err = NewWithWriter("xml", slog.LevelInfo, &buf)
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
	d := Discard()
	ctx := WithLogger(context.Background(), d)
	assert.Same(t, d, FromContext(ctx))
}
