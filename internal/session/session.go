// Package session carries the authenticated caller through a request's
// context. There is deliberately no process-wide current-user state; every
// function needing identity receives it via context.Context.
package session

import (
	"context"

	"github.com/hqv2816/storefront-api/internal/domain"
)

type ctxKey struct{}

type Session struct {
	Token string
	User  *domain.User
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// Token returns the bearer token for outbound calls, or "" when the
// request is anonymous.
func Token(ctx context.Context) string {
	s, _ := FromContext(ctx)
	return s.Token
}

// User returns the authenticated caller, or nil.
func User(ctx context.Context) *domain.User {
	s, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return s.User
}
