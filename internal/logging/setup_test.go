package logging

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
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("warn"))
	require.NoError(t, Validate(""))
	require.Error(t, Validate("verbose"))
}

func TestSetup_JSONFormatWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log, err := Setup(Options{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	log.Info(context.Background(), "session restored", "user", "alice@example.org")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "session restored", rec["msg"])
	assert.Equal(t, "alice@example.org", rec["user"])
	assert.Equal(t, "jobdesk", rec["app"])
}

func TestSetup_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := Setup(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "hidden too")
	assert.Empty(t, buf.String())

	log.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSetup_RejectsUnknownLevel(t *testing.T) {
	_, err := Setup(Options{Level: "loud"})
	require.Error(t, err)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, Options{Level: "debug", Format: "JSON"}.Validate())
	require.NoError(t, Options{}.Validate())
	require.Error(t, Options{Level: "info", Format: "xml"}.Validate())
	require.Error(t, Options{Level: "chatty"}.Validate())
}
