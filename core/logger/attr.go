package logger

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// slog drops empty attributes, so log.Debug("msg", logger.Error(err)) works
// without an explicit nil check.

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Panic records a recovered panic value.
func Panic(recovered any) slog.Attr {
	if recovered == nil {
		return slog.Attr{}
	}
	return slog.Any("panic", recovered)
}

// ============================================================================
// Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// ============================================================================
// Listener Registry
// ============================================================================

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Events creates an attribute for a list of event names.
func Events(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("events", names)
}

// Owner creates an attribute for the identity token of an event owner.
func Owner(guid string) slog.Attr {
	if guid == "" {
		return slog.Attr{}
	}
	return slog.String("owner", guid)
}

// Target describes a listener target by its dynamic type.
// A nil target is reported as "owner", since it resolves to the owner at dispatch.
func Target(target any) slog.Attr {
	if target == nil {
		return slog.String("target", "owner")
	}
	return slog.String("target", fmt.Sprintf("%T", target))
}

// Method creates an attribute for a listener method description.
func Method(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("method", name)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// ============================================================================
// Debugging
// ============================================================================

// Stack captures and returns the current stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}

