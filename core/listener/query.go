package listener

// HasListeners reports whether eventName on owner has at least one listener.
// A negative answer is memoised in the owner's own directory; the marker is
// replaced by the next AddListener for that event. Directories shared through
// Inherit are never written by this check.
func (r *Registry) HasListeners(owner any, eventName string) (bool, error) {
	guid, err := r.guidFor(owner, eventName)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.slots[guid]
	if dir == nil {
		return false, nil
	}
	set, cached := dir.events[eventName]
	if cached && set == nil {
		return false, nil
	}
	if set.iterate(func(Action, bool) bool { return true }) {
		return true, nil
	}
	if dir.source == guid {
		dir.put(eventName, nil)
	}
	return false, nil
}

// WatchedEvents returns the names of events on owner that have at least one
// listener, in the order they were first written.
func (r *Registry) WatchedEvents(owner any) ([]string, error) {
	guid, err := r.guidFor(owner)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.slots[guid]
	if dir == nil {
		return nil, nil
	}
	var names []string
	for _, name := range dir.order {
		if set := dir.events[name]; !set.IsEmpty() {
			names = append(names, name)
		}
	}
	return names, nil
}

// ListenersFor returns the (target, method) pairs registered for eventName on
// owner, in row order then method order.
func (r *Registry) ListenersFor(owner any, eventName string) ([]Action, error) {
	guid, err := r.guidFor(owner, eventName)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.actionSet(guid, eventName, false).Actions(), nil
}

// UnionInto merges the listeners of eventName on sourceOwner into dest.
//
// Example:
//
//	effective := listener.NewActionSet()
//	for _, o := range []any{base, mixin, instance} {
//	    if err := reg.UnionInto(effective, o, "didLoad"); err != nil {
//	        return err
//	    }
//	}
func (r *Registry) UnionInto(dest *ActionSet, sourceOwner any, eventName string) error {
	if dest == nil {
		return ErrNilActionSet
	}
	guid, err := r.guidFor(sourceOwner, eventName)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dest.Union(r.actionSet(guid, eventName, false))
	return nil
}

// DiffInto merges the listeners of eventName on sourceOwner into dest and
// returns only the pairs dest did not already hold.
func (r *Registry) DiffInto(dest *ActionSet, sourceOwner any, eventName string) (*ActionSet, error) {
	if dest == nil {
		return nil, ErrNilActionSet
	}
	guid, err := r.guidFor(sourceOwner, eventName)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return dest.Diff(r.actionSet(guid, eventName, false)), nil
}
