package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), tt.input)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "json")

	l.Debug("hidden")
	l.Info("resolved", "platform", "youtube")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "resolved", line["msg"])
	assert.Equal(t, "youtube", line["platform"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "text")
	l.Debug("materialized", "mode", "inline")

	assert.Contains(t, buf.String(), "msg=materialized")
	assert.Contains(t, buf.String(), "mode=inline")
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := New(&buf, "info", "text").With("request_id", "12345")

	ctx := WithContext(context.Background(), scoped)
	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=12345")

	assert.Equal(t, L, FromContext(context.Background()))
}
