package listener

import (
	"github.com/dmitrymomot/listeners/core/logger"
)

type suspended struct {
	eventName string
	row       int
	index     int
	entry     entry
}

// Suspend removes (target, method) from eventName on owner for the duration
// of body and puts it back at its original position afterwards. body receives
// the effective target (owner when target is nil). Restoration runs on every
// exit path, including a panic in body, and body's error is returned as is.
//
// Example:
//
//	// Update the model without echoing the change back to the view.
//	err := reg.Suspend(model, "didChange", view, listener.Named("Refresh"), func(any) error {
//	    return reg.Send(ctx, model, "didChange")
//	})
func (r *Registry) Suspend(owner any, eventName string, target any, method Method, body func(target any) error) error {
	return r.SuspendEvents(owner, []string{eventName}, target, method, body)
}

// SuspendEvents is Suspend for several events sharing the same target and method.
func (r *Registry) SuspendEvents(owner any, eventNames []string, target any, method Method, body func(target any) error) error {
	guid, err := r.guidFor(owner, eventNames...)
	if err != nil {
		return err
	}
	if body == nil {
		return ErrNilBody
	}

	r.mu.Lock()
	var removed []suspended
	for _, name := range eventNames {
		ri, ei := r.actionSet(guid, name, false).locate(target, method)
		if ei < 0 {
			continue
		}
		set := r.actionSet(guid, name, true)
		removed = append(removed, suspended{eventName: name, row: ri, index: ei, entry: set.entryAt(ri, ei)})
		set.removeAt(ri, ei)
	}
	r.mu.Unlock()

	if len(removed) > 0 {
		r.logger.Debug("listener suspended",
			logger.Owner(guid),
			logger.Events(eventNames),
			logger.Target(target),
			logger.Method(method.String()))
	}

	defer r.restore(guid, target, removed)

	effective := target
	if effective == nil {
		effective = owner
	}
	return body(effective)
}

// restore reinserts suspended entries. An entry body re-added itself is kept
// where it is.
func (r *Registry) restore(guid string, target any, removed []suspended) {
	if len(removed) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range removed {
		set := r.actionSet(guid, s.eventName, true)
		if set.Contains(target, s.entry.method) {
			continue
		}
		set.insertAt(s.row, s.index, target, s.entry)
	}
}
