// Package listeners is an in-process listener registry for Go programs.
//
// Subscribers attach (target, method) pairs to named events on an owner
// object and are called synchronously when the owner sends the event.
// Owners may share a listener configuration and fork it on first write,
// listeners may be suspended for the duration of a callback, and listener
// collections can be merged and diffed.
//
// # Package Organization
//
//   - github.com/dmitrymomot/listeners/core/listener: the registry, action
//     sets, dispatch, suspension, queries and handler decorators.
//   - github.com/dmitrymomot/listeners/core/logger: slog attribute helpers used
//     for structured logging of registry activity.
//   - github.com/dmitrymomot/listeners/core/config: type-cached environment
//     configuration loading.
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/listeners/core/listener
//	go doc -all github.com/dmitrymomot/listeners/core/listener
package listeners
