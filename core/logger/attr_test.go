package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listeners/core/logger"
)

// ============================================================================
// Error Handling Tests
// ============================================================================

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestPanic(t *testing.T) {
	t.Parallel()
	attr := logger.Panic("kaboom")
	assert.Equal(t, "panic", attr.Key)
	assert.Equal(t, "kaboom", attr.Value.Any())
	assert.True(t, logger.Panic(nil).Equal(slog.Attr{}))
}

func TestTiming(t *testing.T) {
	t.Parallel()
	d := logger.Duration(150 * time.Millisecond)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, 150*time.Millisecond, d.Value.Duration())
}

// ============================================================================
// Registry Attribute Tests
// ============================================================================

type widget struct{ name string }

func TestRegistryAttrs(t *testing.T) {
	t.Parallel()

	t.Run("event", func(t *testing.T) {
		t.Parallel()
		attr := logger.Event("didLoad")
		assert.Equal(t, "event", attr.Key)
		assert.Equal(t, "didLoad", attr.Value.String())
	})

	t.Run("events", func(t *testing.T) {
		t.Parallel()
		attr := logger.Events([]string{"a", "b"})
		assert.Equal(t, "events", attr.Key)
		assert.Equal(t, []string{"a", "b"}, attr.Value.Any())
		assert.True(t, logger.Events(nil).Equal(slog.Attr{}))
	})

	t.Run("owner", func(t *testing.T) {
		t.Parallel()
		attr := logger.Owner("guid-1")
		assert.Equal(t, "owner", attr.Key)
		assert.True(t, logger.Owner("").Equal(slog.Attr{}))
	})

	t.Run("target", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "owner", logger.Target(nil).Value.String())
		assert.Equal(t, "*logger_test.widget", logger.Target(&widget{}).Value.String())
	})

	t.Run("method", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "OnLoad", logger.Method("OnLoad").Value.String())
		assert.True(t, logger.Method("").Equal(slog.Attr{}))
	})
}

// ============================================================================
// Generic Metadata Tests
// ============================================================================

func TestGenericMetadata(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "component", logger.Component("listener").Key)

	c := logger.Count("listeners", 3)
	assert.Equal(t, "listeners", c.Key)
	assert.Equal(t, int64(3), c.Value.Int64())
}

// ============================================================================
// Debugging Tests
// ============================================================================

func TestStack(t *testing.T) {
	t.Parallel()
	s := logger.Stack()
	assert.Equal(t, "stack", s.Key)
	assert.Contains(t, s.Value.String(), "goroutine")
	assert.Contains(t, s.Value.String(), "TestStack")
}
