// Package listener provides an in-process listener registry: subscribers
// attach (target, method) pairs to named events on an owner object and are
// called synchronously when the owner sends that event.
//
// # Core Components
//
// Registry holds one listener directory per owner, keyed by the owner's
// identity token. A directory maps event names to ActionSets.
//
// ActionSet is an ordered, deduplicated set of (target, method) pairs. Adding
// a pair twice is a no-op; removing an absent pair is a no-op. It also offers
// Union and Diff for merging listener configurations. Targets are matched by
// identity when they are pointers, maps, channels or slices, and by value
// otherwise. A func cannot be a target.
//
// Method is either a direct handle created with Func or a name created with
// Named. Named methods are resolved on the target at every dispatch, through
// MethodResolver when the target implements it and through reflection
// otherwise.
//
// # Basic Usage
//
//	type Document struct {
//		listener.Object
//		Title string
//	}
//
//	reg := listener.NewRegistry(listener.WithLogger(logger))
//	doc := &Document{Title: "draft"}
//
//	onLoad := listener.Func(func(ctx context.Context, target any, params ...any) error {
//		fmt.Println(target.(*Document).Title, params)
//		return nil
//	})
//
//	_ = reg.AddListener(doc, "didLoad", nil, onLoad) // nil target: the owner
//	_ = reg.Send(ctx, doc, "didLoad", "ok")          // prints: draft [ok]
//	_ = reg.RemoveListener(doc, "didLoad", nil, onLoad)
//
// # Shared Directories
//
// Inherit lets many owners share one directory, typically a class-level
// configuration used by many instances. Reads go straight to the shared
// directory. The first write by an owner that is not the directory's source
// forks it: the event map is copied, and each event's action set is cloned
// on its first write. Writes never reach a structure another owner still uses.
//
//	_ = reg.Inherit(instance, class)
//	_ = reg.AddListener(instance, "didLoad", nil, extra) // forks; class unaffected
//
// # Reentrancy
//
// Listeners may add, remove or send events while a dispatch is running. Send
// iterates a snapshot and re-checks every action against the registry before
// calling it, so a listener that removes itself or a sibling never causes
// another listener to be skipped or called twice.
//
// # Suspension
//
// Suspend removes one listener for the duration of a callback and restores it
// at its original position on every exit path:
//
//	err := reg.Suspend(model, "didChange", view, listener.Named("Refresh"), func(any) error {
//		return reg.Send(ctx, model, "didChange") // view.Refresh is not called
//	})
//
// # Owner Hooks
//
// Owners may implement ListenerAddedHook, ListenerRemovedHook and
// EventInterceptor. An interceptor is called at the start of Send and the
// registered listeners are still dispatched afterwards.
//
// # Configuration
//
// Config can be read from LISTENER_MAX_LISTENERS and
// LISTENER_IGNORE_UNRESOLVED with ConfigFromEnv and applied with WithConfig.
//
// # Errors
//
// Invalid call shapes fail with ErrNilOwner, ErrEmptyEventName,
// ErrUnidentifiableOwner, ErrInvalidTarget or ErrInvalidMethod. A listener
// error aborts Send and is returned wrapped; use errors.Is to match it.
package listener
