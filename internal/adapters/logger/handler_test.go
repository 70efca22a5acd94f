package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gemmatrix/internal/adapters/logger"
)

func newPrettyLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "debug is filtered", level: slog.LevelDebug, want: ""},
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newPrettyLogger(t)
			lg.Log(t.Context(), tt.level, "message")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	lg, buf := newPrettyLogger(t)

	lg.With("platform", "posix-dev").Info("built", "keys", 3)
	assert.Equal(t, "built platform=posix-dev keys=3\n", buf.String())
}

func TestPrettyHandler_Group(t *testing.T) {
	lg, buf := newPrettyLogger(t)

	lg.WithGroup("matrix").Info("built", "keys", 3)
	assert.Equal(t, "built matrix.keys=3\n", buf.String())
}
