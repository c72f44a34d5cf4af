package auth

import "context"

type userKey struct{}

// WithUserID stores the authenticated user's ID in ctx. Set once by the auth
// middleware after token validation; this context value is the only
// per-request auth state the application carries.
func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserID extracts the authenticated user's ID from ctx.
// ok is false when the request did not pass the auth middleware.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userKey{}).(uint)
	return id, ok
}
