package listener

import "log/slog"

// Option configures a Registry.
type Option func(*Registry)

// WithLogger configures structured logging for registry operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConfig applies every field of cfg.
//
// Example:
//
//	cfg, err := listener.ConfigFromEnv()
//	if err != nil {
//	    return err
//	}
//	reg := listener.NewRegistry(listener.WithConfig(cfg))
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		WithMaxListeners(cfg.MaxListeners)(r)
		WithIgnoreUnresolved(cfg.IgnoreUnresolved)(r)
	}
}

// WithMaxListeners sets the per-event listener count above which the registry
// logs a possible leak warning. Zero disables the warning.
func WithMaxListeners(n int) Option {
	return func(r *Registry) {
		if n >= 0 {
			r.maxListeners = n
		}
	}
}

// WithIgnoreUnresolved makes Send skip named methods that cannot be resolved
// on their target instead of failing with ErrMethodNotFound.
func WithIgnoreUnresolved(ignore bool) Option {
	return func(r *Registry) {
		r.ignoreUnresolved = ignore
	}
}

// WithIdentity replaces the function used to derive owner identity tokens.
// The default is GUIDFor.
func WithIdentity(fn IdentityFunc) Option {
	return func(r *Registry) {
		if fn != nil {
			r.identity = fn
		}
	}
}
