package listener

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/listeners/core/logger"
)

// Send fires eventName on owner. If owner implements EventInterceptor it is
// called first; the registered listeners are dispatched afterwards either way.
//
// Listeners run synchronously, rows in registration order and, within a row,
// the most recently added method first. Send works on a snapshot but checks
// each action against the live registry right before invoking it: listeners
// removed during the dispatch are not called, none is called twice, and
// listeners added during the dispatch wait for the next Send.
//
// The first listener error aborts the dispatch and is returned wrapped.
// Panics are not recovered; see Recover.
//
// Example:
//
//	if err := reg.Send(ctx, doc, "didLoad", "ok"); err != nil {
//	    return err
//	}
func (r *Registry) Send(ctx context.Context, owner any, eventName string, params ...any) error {
	guid, err := r.guidFor(owner, eventName)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if i, ok := owner.(EventInterceptor); ok {
		i.InterceptEvent(ctx, eventName, params)
	}

	r.mu.Lock()
	snapshot := r.actionSet(guid, eventName, false).Clone()
	r.mu.Unlock()

	return r.dispatch(ctx, owner, guid, eventName, snapshot, true, params)
}

// SendActions dispatches eventName on owner to an explicit action set, such
// as the result of Diff, instead of the owner's registered listeners. The
// set is not re-checked against the registry and one-shot flags are ignored.
// The owner's EventInterceptor is not called.
func (r *Registry) SendActions(ctx context.Context, owner any, eventName string, actions *ActionSet, params ...any) error {
	guid, err := r.guidFor(owner, eventName)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return r.dispatch(ctx, owner, guid, eventName, actions.Clone(), false, params)
}

func (r *Registry) dispatch(ctx context.Context, owner any, guid, eventName string, snapshot *ActionSet, live bool, params []any) error {
	if snapshot.IsEmpty() {
		return nil
	}
	ctx = withDispatchMeta(ctx, owner, eventName)

	var err error
	snapshot.iterate(func(a Action, _ bool) bool {
		if live {
			present, consumed := r.claim(guid, eventName, a)
			if !present {
				return false
			}
			if consumed {
				r.notifyRemoved(owner, guid, eventName, a.Target, []Method{a.Method})
			}
		}
		err = r.invoke(ctx, owner, eventName, a, params)
		return err != nil
	})
	return err
}

// claim reports whether a is still registered and, for one-shot entries,
// removes it before it runs.
func (r *Registry) claim(guid, eventName string, a Action) (present, consumed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.actionSet(guid, eventName, false)
	ri, ei := current.locate(a.Target, a.Method)
	if ei < 0 {
		return false, false
	}
	if !current.entryAt(ri, ei).once {
		return true, false
	}
	r.actionSet(guid, eventName, true).Remove(a.Target, a.Method)
	return true, true
}

func (r *Registry) invoke(ctx context.Context, owner any, eventName string, a Action, params []any) error {
	target := a.Target
	if target == nil {
		target = owner
	}

	fn, err := a.Method.bind(target)
	if err != nil {
		if r.ignoreUnresolved && errors.Is(err, ErrMethodNotFound) {
			r.logger.WarnContext(ctx, "skipping unresolved listener method",
				logger.Event(eventName),
				logger.Target(target),
				logger.Method(a.Method.String()))
			return nil
		}
		return fmt.Errorf("listener %s on %q: %w", a.Method, eventName, err)
	}

	if err := fn(ctx, target, params...); err != nil {
		return fmt.Errorf("listener %s on %q: %w", a.Method, eventName, err)
	}
	return nil
}
