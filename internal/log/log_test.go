package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alia5/viipad/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", log.LevelTrace},
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, log.ParseLevel(tt.in))
		})
	}
}

func TestHandlerSplitsByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(log.NewHandler(&out, &errOut, slog.LevelDebug))

	logger.Debug("claimed", "stick", "left")
	logger.Error("save failed")
	logger.Log(context.Background(), log.LevelTrace, "frame")

	assert.Contains(t, out.String(), "claimed")
	assert.Contains(t, out.String(), "stick=left")
	assert.NotContains(t, out.String(), "save failed")
	assert.NotContains(t, out.String(), "frame")
	assert.Contains(t, errOut.String(), "save failed")
	assert.NotContains(t, errOut.String(), "claimed")
}

func TestSetupLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viipad.log")
	logger, closers, err := log.SetupLogger("debug", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)
	logger.Debug("hello")
	require.NoError(t, closers[0].Close())
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := log.NewRaw(&buf)
	r.Log(true, []byte{0x00, 0xab, 0x10})
	r.Log(false, []byte{0xff})
	r.Log(true, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "touch-> frame: 3 bytes, hex: 00 ab 10")
	assert.Contains(t, lines[1], "core<- frame: 1 bytes, hex: ff")

	log.NewRaw(nil).Log(true, []byte{1})
}
