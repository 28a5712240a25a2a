package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextHandler_WritesLevelsAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", "warn")
	ctx := context.Background()

	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn", "key", "k1")
	log.Error(ctx, "err", "n", 4)

	out := buf.String()
	assert.NotContains(t, out, "msg=dbg")
	assert.NotContains(t, out, "msg=inf")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "key=k1")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "n=4")
}

func TestNew_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "JSON", "debug")

	log.Debug(context.Background(), "hello", "email", "a@b.com")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "a@b.com", rec["email"])
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", "info")

	log.With("component", "auth").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "component=auth", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseLevel(tc.in), tc.in)
	}
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	ctx := context.TODO()
	log.Info(ctx, "ok")
	log.With("a", 1).Error(ctx, "ok")
}
