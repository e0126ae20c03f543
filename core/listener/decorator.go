package listener

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/listeners/core/logger"
)

// Decorator wraps a HandlerFunc to add cross-cutting behaviour.
type Decorator func(HandlerFunc) HandlerFunc

// Decorate applies decorators to fn. The first decorator becomes the
// outermost wrapper and runs first.
//
// Example:
//
//	method := listener.Func(listener.Decorate(onSave,
//	    listener.Logging(logger),
//	    listener.Recover(),
//	))
func Decorate(fn HandlerFunc, decorators ...Decorator) HandlerFunc {
	// Wrap from the last decorator so the first one ends up outermost.
	for i := len(decorators) - 1; i >= 0; i-- {
		fn = decorators[i](fn)
	}
	return fn
}

// Recover converts a panic in the wrapped handler into an error matching
// ErrListenerPanic, so it aborts the dispatch like any other failure.
func Recover() Decorator {
	return RecoverWithLogger(nil)
}

// RecoverWithLogger is Recover that also logs the panic value and stack at
// error level. A nil logger disables logging.
func RecoverWithLogger(log *slog.Logger) Decorator {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, target any, params ...any) (err error) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if log != nil {
					log.ErrorContext(ctx, "listener panicked",
						logger.Event(EventName(ctx)),
						logger.Target(target),
						logger.Panic(rec),
						logger.Stack())
				}
				err = fmt.Errorf("%w: %v", ErrListenerPanic, rec)
			}()
			return next(ctx, target, params...)
		}
	}
}

// Logging logs each invocation of the wrapped handler with its duration.
func Logging(log *slog.Logger) Decorator {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, target any, params ...any) error {
			start := time.Now()
			name := EventName(ctx)
			log.DebugContext(ctx, "listener started",
				logger.Event(name),
				logger.Target(target))

			err := next(ctx, target, params...)
			if err != nil {
				log.ErrorContext(ctx, "listener failed",
					logger.Event(name),
					logger.Target(target),
					logger.Duration(time.Since(start)),
					logger.Error(err))
				return err
			}

			log.DebugContext(ctx, "listener completed",
				logger.Event(name),
				logger.Target(target),
				logger.Duration(time.Since(start)))
			return nil
		}
	}
}
