package identity

import (
	"context"
)

type contextKeyType struct{}

// identityContextKey is the key used for identity.FromContext and
// identity.NewContext.
var identityContextKey = contextKeyType(struct{}{})

// NewContext returns a new context.Context that carries the provided
// identity.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// FromContext returns the identity from the context if present, and empty
// otherwise.
func FromContext(ctx context.Context) Identity {
	if ctx == nil {
		return Identity{}
	}
	if id, ok := ctx.Value(identityContextKey).(Identity); ok {
		return id
	}
	return Identity{}
}
