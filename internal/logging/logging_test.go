package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/abhisek/tutorlink/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSONWithSession(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Setup(config.LogConfig{Level: "debug", Format: "json"}, &buf)

	ctx := WithSession(context.Background(), "sess-1")
	FromContext(ctx).Debug("dispatched", "kind", "RadioUsed")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "dispatched", rec["msg"])
	assert.Equal(t, "sess-1", rec["session_id"])
	assert.Equal(t, "RadioUsed", rec["kind"])
}

func TestSetup_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Setup(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	Logger().Info("hidden")
	assert.Empty(t, buf.String())

	Logger().Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSessionFrom(t *testing.T) {
	assert.Empty(t, SessionFrom(context.Background()))
	assert.Equal(t, "abc", SessionFrom(WithSession(context.Background(), "abc")))
	assert.Same(t, Logger(), FromContext(context.Background()))
}
