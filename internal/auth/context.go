package auth

import (
	"context"

	"fxledger/internal/model"
)

type contextKey struct{}

// AuthContext carries the authenticated user and the session token that
// authorized the request.
type AuthContext struct {
	User         *model.User
	SessionToken string
}

func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(contextKey{}).(AuthContext)
	return ac, ok
}

func UserID(ctx context.Context) string {
	ac, ok := FromContext(ctx)
	if !ok || ac.User == nil {
		return ""
	}
	return ac.User.ID
}
