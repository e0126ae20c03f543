// Package logger provides structured logging attribute helpers built on Go's
// standard slog package.
//
// Every helper returns a slog.Attr. Helpers that receive an absent value (nil
// error, empty identifier) return the empty Attr, which slog silently drops, so
// callers never need nil checks around log statements.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/listeners/core/logger"
//
//	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
//
//	log.Debug("listener added",
//		logger.Component("listener"),
//		logger.Event("didLoad"),
//		logger.Owner(guid),
//		logger.Target(target),
//		logger.Method("OnLoad"),
//	)
//
// # Error Logging
//
//	log.Error("listener failed",
//		logger.Error(err),
//		logger.Event(name),
//		logger.Duration(time.Since(start)),
//	)
////
// # Registry Attributes
//
// Owner, Target, Method, Event and Events describe listener registry state.
// Target reports the dynamic type of a target rather than its value, and a nil
// target is reported as "owner" because it resolves to the owner on dispatch.
//
// # Debugging
//
// Panic and Stack record a recovered panic value and the current goroutine
// stack, as logged by listener.RecoverWithLogger.
package logger
