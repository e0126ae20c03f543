package listener

import "context"

type eventNameCtx struct{}

// WithEventName attaches an event name to the context.
func WithEventName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, eventNameCtx{}, name)
}

// EventName extracts the name of the event being dispatched.
// Returns empty string if not present.
func EventName(ctx context.Context) string {
	if name, ok := ctx.Value(eventNameCtx{}).(string); ok {
		return name
	}
	return ""
}

type ownerCtx struct{}

// WithOwner attaches the owner of the event being dispatched to the context.
func WithOwner(ctx context.Context, owner any) context.Context {
	return context.WithValue(ctx, ownerCtx{}, owner)
}

// Owner extracts the owner of the event being dispatched.
// Returns nil if not present.
func Owner(ctx context.Context) any {
	return ctx.Value(ownerCtx{})
}

// withDispatchMeta attaches all dispatch metadata to the context.
func withDispatchMeta(ctx context.Context, owner any, eventName string) context.Context {
	ctx = WithEventName(ctx, eventName)
	ctx = WithOwner(ctx, owner)
	return ctx
}
