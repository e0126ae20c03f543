package listener

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/listeners/core/logger"
)

// directory maps event names to action sets for one or more owners.
// A nil *ActionSet stored under a name is the "no listeners" marker left by
// HasListeners; writers treat it as absent.
type directory struct {
	// source is the GUID of the only owner allowed to write in place.
	source string
	events map[string]*ActionSet
	order  []string
}

func newDirectory(source string) *directory {
	return &directory{
		source: source,
		events: make(map[string]*ActionSet),
	}
}

// fork copies the event map for source. The action sets become shared between
// both directories and are cloned lazily by the first write to each event,
// whichever side makes it.
func (d *directory) fork(source string) *directory {
	for _, set := range d.events {
		if set != nil {
			set.shared = true
		}
	}
	return &directory{
		source: source,
		events: maps.Clone(d.events),
		order:  slices.Clone(d.order),
	}
}

func (d *directory) put(eventName string, set *ActionSet) {
	if _, ok := d.events[eventName]; !ok {
		d.order = append(d.order, eventName)
	}
	d.events[eventName] = set
}

// fork gives guid a private copy of dir in its slot. The caller must hold r.mu.
func (r *Registry) fork(guid string, dir *directory) *directory {
	r.logger.Debug("forking shared listener directory",
		logger.Owner(guid),
		slog.String("source", dir.source),
		logger.Count("events", len(dir.events)))
	dir = dir.fork(guid)
	r.slots[guid] = dir
	return dir
}

// actionSet returns the set for (guid, eventName). In read mode it never
// mutates anything and may return nil. In write mode the returned set is
// private to guid: the directory is created or forked and the set created,
// un-marked or cloned as needed. The caller must hold r.mu.
func (r *Registry) actionSet(guid, eventName string, writable bool) *ActionSet {
	dir := r.slots[guid]
	if !writable {
		if dir == nil {
			return nil
		}
		return dir.events[eventName]
	}

	switch {
	case dir == nil:
		dir = newDirectory(guid)
		r.slots[guid] = dir
	case dir.source != guid:
		dir = r.fork(guid, dir)
	}

	set := dir.events[eventName]
	switch {
	case set == nil:
		set = &ActionSet{owner: guid}
		dir.put(eventName, set)
	case set.owner != guid || set.shared:
		set = set.cloneFor(guid)
		dir.put(eventName, set)
	}
	return set
}
