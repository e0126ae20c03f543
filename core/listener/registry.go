package listener

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/listeners/core/logger"
)

// Registry stores listener directories for any number of owners and
// dispatches events to them. Each owner's directory lives in a side table
// keyed by the owner's identity token and is dropped by Release.
//
// All operations are synchronous. Listeners run on the caller's goroutine
// with no registry lock held, so they may add, remove or send reentrantly.
type Registry struct {
	mu    sync.Mutex
	slots map[string]*directory

	identity         IdentityFunc
	logger           *slog.Logger
	maxListeners     int
	ignoreUnresolved bool
}

// NewRegistry creates an empty registry with the given options.
//
// Example:
//
//	reg := listener.NewRegistry(
//	    listener.WithLogger(logger),
//	    listener.WithMaxListeners(64),
//	)
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		slots:    make(map[string]*directory),
		identity: GUIDFor,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger = r.logger.With(logger.Component("listener"))
	return r
}

// guidFor validates the call shape and returns the owner's identity token.
func (r *Registry) guidFor(owner any, eventNames ...string) (string, error) {
	if owner == nil {
		return "", ErrNilOwner
	}
	for _, name := range eventNames {
		if name == "" {
			return "", ErrEmptyEventName
		}
	}
	return r.identity(owner)
}

// AddListener subscribes (target, method) to eventName on owner. A nil target
// resolves to owner at dispatch time. Adding a pair that is already
// registered is a no-op.
//
// Pointer, map, chan and slice targets are matched by identity, other values
// by equality. Func targets fail with ErrInvalidTarget.
//
// Example:
//
//	onLoad := listener.Func(func(ctx context.Context, target any, params ...any) error {
//	    fmt.Println("loaded:", params...)
//	    return nil
//	})
//	err := reg.AddListener(doc, "didLoad", nil, onLoad)
func (r *Registry) AddListener(owner any, eventName string, target any, method Method) error {
	return r.addListener(owner, eventName, target, method, false)
}

// AddListenerOnce is like AddListener, but the pair is removed right before
// its first invocation by Send.
func (r *Registry) AddListenerOnce(owner any, eventName string, target any, method Method) error {
	return r.addListener(owner, eventName, target, method, true)
}

func (r *Registry) addListener(owner any, eventName string, target any, method Method, once bool) error {
	guid, err := r.guidFor(owner, eventName)
	if err != nil {
		return err
	}
	if method.IsZero() {
		return ErrInvalidMethod
	}
	if !validTarget(target) {
		return fmt.Errorf("%w: %T", ErrInvalidTarget, target)
	}

	r.mu.Lock()
	set := r.actionSet(guid, eventName, true)
	added := set.add(target, method, once)
	n := set.Len()
	r.mu.Unlock()

	if !added {
		return nil
	}

	r.logger.Debug("listener added",
		logger.Event(eventName),
		logger.Owner(guid),
		logger.Target(target),
		logger.Method(method.String()))

	if r.maxListeners > 0 && n == r.maxListeners+1 {
		r.logger.Warn("possible listener leak: event exceeds max listeners",
			logger.Event(eventName),
			logger.Owner(guid),
			logger.Count("listeners", n),
			logger.Count("max_listeners", r.maxListeners))
	}

	if h, ok := owner.(ListenerAddedHook); ok {
		h.OnListenerAdded(eventName, target, method)
	}
	return nil
}

// RemoveListener unsubscribes (target, method) from eventName on owner. A
// zero method removes every method registered for target. Removing a pair
// that is not registered is a no-op.
func (r *Registry) RemoveListener(owner any, eventName string, target any, method Method) error {
	guid, err := r.guidFor(owner, eventName)
	if err != nil {
		return err
	}

	r.mu.Lock()
	var removed []Method
	current := r.actionSet(guid, eventName, false)
	switch {
	case method.IsZero():
		if current.rowIndex(target) >= 0 {
			removed = r.actionSet(guid, eventName, true).RemoveTarget(target)
		}
	case current.Contains(target, method):
		r.actionSet(guid, eventName, true).Remove(target, method)
		removed = []Method{method}
	}
	r.mu.Unlock()

	r.notifyRemoved(owner, guid, eventName, target, removed)
	return nil
}

func (r *Registry) notifyRemoved(owner any, guid, eventName string, target any, methods []Method) {
	hook, _ := owner.(ListenerRemovedHook)
	for _, m := range methods {
		r.logger.Debug("listener removed",
			logger.Event(eventName),
			logger.Owner(guid),
			logger.Target(target),
			logger.Method(m.String()))
		if hook != nil {
			hook.OnListenerRemoved(eventName, target, m)
		}
	}
}

// Inherit makes child share parent's listener directory. The child sees the
// parent's listeners, including ones the parent adds later, until its first
// write forks a private copy. Writes by the child never reach the parent.
// Any directory the child already had is replaced. A parent still sharing
// its own ancestor's directory is forked first, so chains of Inherit keep
// this guarantee at every level.
func (r *Registry) Inherit(child, parent any) error {
	cg, err := r.guidFor(child)
	if err != nil {
		return err
	}
	pg, err := r.guidFor(parent)
	if err != nil {
		return err
	}
	if cg == pg {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.slots[pg]
	switch {
	case dir == nil:
		dir = newDirectory(pg)
		r.slots[pg] = dir
	case dir.source != pg:
		// A parent hands down only a directory it owns.
		dir = r.fork(pg, dir)
	}
	r.slots[cg] = dir
	return nil
}

// Release drops owner's directory. Owners sharing it through Inherit keep
// their reference.
func (r *Registry) Release(owner any) error {
	guid, err := r.guidFor(owner)
	if err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.slots, guid)
	r.mu.Unlock()
	return nil
}
