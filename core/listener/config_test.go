package listener_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listeners/core/listener"
)

// ConfigFromEnv caches per process, so it is exercised by this test only.
func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LISTENER_MAX_LISTENERS", "8")
	t.Setenv("LISTENER_IGNORE_UNRESOLVED", "true")

	cfg, err := listener.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, listener.Config{MaxListeners: 8, IgnoreUnresolved: true}, cfg)
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	reg := listener.NewRegistry(
		listener.WithLogger(log),
		listener.WithConfig(listener.Config{MaxListeners: 1, IgnoreUnresolved: true}),
	)
	owner := newDocument("o")

	require.NoError(t, reg.AddListener(owner, "e", nil, listener.Named("Missing")))
	require.NoError(t, reg.AddListener(owner, "e", nil, listener.Named("Touch")))
	require.NoError(t, reg.Send(context.Background(), owner, "e"))

	assert.Equal(t, 1, owner.hits)
	assert.Contains(t, buf.String(), "possible listener leak")
	assert.Contains(t, buf.String(), "skipping unresolved listener method")
}

func TestWithMaxListeners_IgnoresNegative(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	reg := listener.NewRegistry(listener.WithLogger(log), listener.WithMaxListeners(-1))
	owner := newDocument("o")

	require.NoError(t, reg.AddListener(owner, "e", nil, listener.Named("One")))
	require.NoError(t, reg.AddListener(owner, "e", nil, listener.Named("Two")))
	assert.Empty(t, buf.String())
}
