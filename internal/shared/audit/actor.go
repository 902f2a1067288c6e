// Package audit carries the acting user through a request so the persistence
// layer can stamp created_by and modified_by columns.
package audit

import "context"

type actorKey struct{}

// WithActor returns a context that records userID as the acting user.
// A zero userID leaves ctx unchanged.
func WithActor(ctx context.Context, userID uint) context.Context {
	if userID == 0 {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the acting user, if any.
func ActorFrom(ctx context.Context) (uint, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(actorKey{}).(uint)
	return id, ok && id != 0
}
