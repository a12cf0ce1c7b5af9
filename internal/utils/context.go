package utils

import (
	"context"

	"github.com/MKhiriev/go-ads-board/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the request context key under which the resolved
// [models.Identity] is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext returns the identity stored by [WithIdentity].
// Anonymous requests yield the zero identity and false.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || !identity.IsAuthenticated() {
		return models.Identity{}, false
	}
	return identity, true
}
