package listener

import (
	"reflect"
	"slices"
)

// Action is a single (target, method) subscription. A nil Target resolves
// to the event owner at dispatch time.
type Action struct {
	Target any
	Method Method
}

type entry struct {
	method Method
	once   bool
}

type row struct {
	target  any
	entries []entry
}

// ActionSet is an ordered, deduplicated collection of actions. Rows are keyed
// by target in first-seen order; each row holds its methods in insertion order.
// A target appears in at most one row and a method at most once per row.
//
// The zero value and a nil *ActionSet are empty sets. Read methods are safe on
// a nil receiver.
type ActionSet struct {
	// owner tags the set with the GUID of the owner allowed to mutate it in
	// place. Sets built by callers have no tag.
	owner string
	// shared is set when a fork leaves the set referenced by more than one
	// directory; every writer must then clone it, including its owner.
	shared bool
	rows   []row
}

// NewActionSet returns an empty accumulator for Union and Diff.
func NewActionSet() *ActionSet {
	return &ActionSet{}
}

// Len returns the number of (target, method) pairs.
func (s *ActionSet) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, r := range s.rows {
		n += len(r.entries)
	}
	return n
}

// IsEmpty reports whether the set holds no pairs.
func (s *ActionSet) IsEmpty() bool {
	return !s.iterate(func(Action, bool) bool { return true })
}

// Contains reports whether the (target, method) pair is in the set.
func (s *ActionSet) Contains(target any, method Method) bool {
	_, ei := s.locate(target, method)
	return ei >= 0
}

// Add registers the pair, returning false when it was already present or
// when target cannot be identified (a func, or a value holding one).
func (s *ActionSet) Add(target any, method Method) bool {
	return s.add(target, method, false)
}

func (s *ActionSet) add(target any, method Method, once bool) bool {
	if method.IsZero() || !validTarget(target) {
		return false
	}
	ri := s.rowIndex(target)
	if ri < 0 {
		s.rows = append(s.rows, row{target: target, entries: []entry{{method: method, once: once}}})
		return true
	}
	if s.rows[ri].indexOf(method) >= 0 {
		return false
	}
	s.rows[ri].entries = append(s.rows[ri].entries, entry{method: method, once: once})
	return true
}

// Remove deletes the pair and drops the target's row once it is empty.
// It returns false when the pair was not registered.
func (s *ActionSet) Remove(target any, method Method) bool {
	ri, ei := s.locate(target, method)
	if ei < 0 {
		return false
	}
	s.removeAt(ri, ei)
	return true
}

// RemoveTarget deletes every method registered for target and returns them
// in registration order. The methods are snapshotted before removal starts.
func (s *ActionSet) RemoveTarget(target any) []Method {
	ri := s.rowIndex(target)
	if ri < 0 {
		return nil
	}
	methods := make([]Method, len(s.rows[ri].entries))
	for i, e := range s.rows[ri].entries {
		methods[i] = e.method
	}
	for _, m := range methods {
		s.Remove(target, m)
	}
	return methods
}

// Actions flattens the set into pairs, in row order then method order.
func (s *ActionSet) Actions() []Action {
	if s == nil {
		return nil
	}
	out := make([]Action, 0, s.Len())
	for _, r := range s.rows {
		for _, e := range r.entries {
			out = append(out, Action{Target: r.target, Method: e.method})
		}
	}
	return out
}

// Clone returns an untagged copy that shares no mutable state with s.
func (s *ActionSet) Clone() *ActionSet {
	if s == nil {
		return nil
	}
	return s.cloneFor("")
}

func (s *ActionSet) cloneFor(owner string) *ActionSet {
	c := &ActionSet{owner: owner, rows: make([]row, len(s.rows))}
	for i, r := range s.rows {
		c.rows[i] = row{target: r.target, entries: slices.Clone(r.entries)}
	}
	return c
}

// Union adds every pair of src that s does not already hold.
func (s *ActionSet) Union(src *ActionSet) {
	src.iterateForward(func(a Action, once bool) {
		s.add(a.Target, a.Method, once)
	})
}

// Diff adds every pair of src that s does not already hold, and returns a
// fresh set with exactly those newly added pairs.
func (s *ActionSet) Diff(src *ActionSet) *ActionSet {
	added := NewActionSet()
	src.iterateForward(func(a Action, once bool) {
		if s.add(a.Target, a.Method, once) {
			added.add(a.Target, a.Method, once)
		}
	})
	return added
}

// iterate visits rows in order and, within a row, methods from the last index
// to the first. It stops as soon as visit returns true and reports whether it
// stopped early.
func (s *ActionSet) iterate(visit func(a Action, once bool) bool) bool {
	if s == nil {
		return false
	}
	for _, r := range s.rows {
		for j := len(r.entries) - 1; j >= 0; j-- {
			if visit(Action{Target: r.target, Method: r.entries[j].method}, r.entries[j].once) {
				return true
			}
		}
	}
	return false
}

func (s *ActionSet) iterateForward(visit func(a Action, once bool)) {
	if s == nil {
		return
	}
	for _, r := range s.rows {
		for _, e := range r.entries {
			visit(Action{Target: r.target, Method: e.method}, e.once)
		}
	}
}

func (s *ActionSet) rowIndex(target any) int {
	if s == nil {
		return -1
	}
	for i := range s.rows {
		if sameTarget(s.rows[i].target, target) {
			return i
		}
	}
	return -1
}

// locate returns the row and entry index of the pair, or -1 for missing parts.
func (s *ActionSet) locate(target any, method Method) (int, int) {
	ri := s.rowIndex(target)
	if ri < 0 {
		return -1, -1
	}
	return ri, s.rows[ri].indexOf(method)
}

func (s *ActionSet) entryAt(ri, ei int) entry {
	return s.rows[ri].entries[ei]
}

func (s *ActionSet) removeAt(ri, ei int) {
	s.rows[ri].entries = slices.Delete(s.rows[ri].entries, ei, ei+1)
	if len(s.rows[ri].entries) == 0 {
		s.rows = slices.Delete(s.rows, ri, ri+1)
	}
}

// insertAt puts e back at the recorded position, clamped to the current
// bounds. An existing row for target is reused instead of creating a new one.
func (s *ActionSet) insertAt(ri, ei int, target any, e entry) {
	if cur := s.rowIndex(target); cur >= 0 {
		entries := s.rows[cur].entries
		s.rows[cur].entries = slices.Insert(entries, min(ei, len(entries)), e)
		return
	}
	s.rows = slices.Insert(s.rows, min(ri, len(s.rows)), row{target: target, entries: []entry{e}})
}

func (r row) indexOf(method Method) int {
	for i, e := range r.entries {
		if e.method == method {
			return i
		}
	}
	return -1
}

// sameTarget compares targets by identity for reference kinds (pointer, map,
// chan and slice header) and by value for everything else. Func targets never
// match, so they cannot be registered.
func sameTarget(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}

	if ta.Comparable() {
		if eq, ok := safeEqual(a, b); ok {
			return eq
		}
	}
	// Structs and arrays holding slices, maps or funcs behind interfaces.
	return reflect.DeepEqual(a, b)
}

// safeEqual reports a == b, or ok=false when an interface field holds an
// uncomparable dynamic value.
func safeEqual(a, b any) (eq, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}

// validTarget reports whether target can be found again once registered.
func validTarget(target any) bool {
	return sameTarget(target, target)
}
