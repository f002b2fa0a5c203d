// Package ctxutil carries request-scoped values through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	ownerIDKey   struct{}
	requestIDKey struct{}
)

// WithOwnerID stores the authenticated cellar owner in the context.
func WithOwnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey{}, id)
}

// OwnerIDFromCtx returns the owner stored by WithOwnerID.
// A missing value or uuid.Nil both report false: the request is anonymous.
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
