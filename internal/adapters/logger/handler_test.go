package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/xspring/internal/adapters/logger"
)

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
		{name: "info", level: slog.LevelInfo, want: "message\n"},
		{name: "warn", level: slog.LevelWarn, want: "! message\n"},
		{name: "error", level: slog.LevelError, want: "✗ message\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, "message")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))

	lg.Debug("first")
	level.Set(slog.LevelDebug)
	lg.Debug("second")

	assert.Equal(t, "· second\n", buf.String())
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))

	lg.With("stage", "download").WithGroup("http").Info("request", "status", 200)

	assert.Equal(t, "request http.stage=download http.status=200\n", buf.String())
}

func TestPrettyHandler_QuotesValuesWithSpaces(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Info("generating project", "name", "demo app")

	g := goldie.New(t)
	g.Assert(t, "handler_quoted_attr", buf.Bytes())
}
