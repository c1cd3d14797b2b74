package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestConsoleHandlerRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	h := &consoleHandler{out: &out, errOut: &errOut, level: slog.LevelDebug}
	logger := slog.New(h)

	logger.Info("all good", "key", "value")
	logger.Error("broken")

	assert.Contains(t, out.String(), "all good")
	assert.Contains(t, out.String(), "key=value")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "broken")
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	h := &consoleHandler{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}, level: slog.LevelWarn}
	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestConsoleHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	h := &consoleHandler{out: &out, errOut: &bytes.Buffer{}, level: slog.LevelDebug}
	logger := slog.New(h).With("unit", 3)

	logger.Info("attached")
	assert.Contains(t, out.String(), "unit=3")
}

func TestMultiHandlerFanOut(t *testing.T) {
	var a, b bytes.Buffer
	m := multiHandler{hs: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	require.NoError(t, m.Handle(context.Background(), r))

	assert.Contains(t, a.String(), "hello")
	assert.True(t, m.Enabled(context.Background(), slog.LevelInfo),
		"enabled when any handler is")
}

func TestSetupLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joycore.log")
	logger, closers, err := SetupLogger("debug", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("file bound")
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file bound")
}
