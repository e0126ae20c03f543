package listener

import "context"

// ListenerAddedHook is implemented by owners that want to know when a
// listener is newly registered on them. Idempotent re-adds do not call it.
type ListenerAddedHook interface {
	OnListenerAdded(eventName string, target any, method Method)
}

// ListenerRemovedHook is implemented by owners that want to know when a
// registered listener is removed, including one-shot listeners consumed by Send.
type ListenerRemovedHook interface {
	OnListenerRemoved(eventName string, target any, method Method)
}

// EventInterceptor is implemented by owners that handle their own events.
// Send calls InterceptEvent before dispatching to registered listeners and
// then dispatches as usual: the owner and its listeners both receive the event.
type EventInterceptor interface {
	InterceptEvent(ctx context.Context, eventName string, params []any)
}
