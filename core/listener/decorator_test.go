package listener_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listeners/core/listener"
)

func TestDecorate(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	trace := func(name string) listener.Decorator {
		return func(next listener.HandlerFunc) listener.HandlerFunc {
			return func(ctx context.Context, target any, params ...any) error {
				rec.record(name + ":before")
				err := next(ctx, target, params...)
				rec.record(name + ":after")
				return err
			}
		}
	}

	fn := listener.Decorate(rec.handler("handler"), trace("outer"), trace("inner"))
	require.NoError(t, fn(context.Background(), nil))

	assert.Equal(t, []string{
		"outer:before",
		"inner:before",
		"handler",
		"inner:after",
		"outer:after",
	}, rec.Calls())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	reg := listener.NewRegistry()
	owner := newDocument("o")
	rec := &recorder{}
	a, b := newDocument("a"), newDocument("b")

	panicky := listener.Decorate(func(context.Context, any, ...any) error {
		panic("kaboom")
	}, listener.Recover())

	require.NoError(t, reg.AddListener(owner, "e", a, listener.Func(panicky)))
	require.NoError(t, reg.AddListener(owner, "e", b, rec.method("b")))

	err := reg.Send(context.Background(), owner, "e")
	require.ErrorIs(t, err, listener.ErrListenerPanic)
	assert.Contains(t, err.Error(), "kaboom")
	assert.Empty(t, rec.Calls())
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := listener.NewRegistry()
	owner := newDocument("o")
	errBoom := errors.New("boom")

	ok := listener.Decorate(func(context.Context, any, ...any) error { return nil }, listener.Logging(log))
	failing := listener.Decorate(func(context.Context, any, ...any) error { return errBoom }, listener.Logging(log))

	require.NoError(t, reg.AddListener(owner, "saved", nil, listener.Func(ok)))
	require.NoError(t, reg.Send(context.Background(), owner, "saved"))

	out := buf.String()
	assert.Contains(t, out, "listener started")
	assert.Contains(t, out, "listener completed")
	assert.Contains(t, out, "event=saved")

	buf.Reset()
	require.NoError(t, reg.AddListener(owner, "failed", nil, listener.Func(failing)))
	require.ErrorIs(t, reg.Send(context.Background(), owner, "failed"), errBoom)
	assert.Contains(t, buf.String(), "listener failed")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestRecoverWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	reg := listener.NewRegistry()
	owner := newDocument("o")

	panicky := listener.Decorate(func(context.Context, any, ...any) error {
		panic("kaboom")
	}, listener.RecoverWithLogger(log))
	require.NoError(t, reg.AddListener(owner, "saved", nil, listener.Func(panicky)))

	err := reg.Send(context.Background(), owner, "saved")
	require.ErrorIs(t, err, listener.ErrListenerPanic)

	out := buf.String()
	assert.Contains(t, out, "listener panicked")
	assert.Contains(t, out, "panic=kaboom")
	assert.Contains(t, out, "event=saved")
	assert.Contains(t, out, "stack=")
}
