package rest

import (
	"context"

	"github.com/opportunest/opportunest-server/internal/security"
)

type ctxKeyIdentity struct{}

func withIdentity(ctx context.Context, id security.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity{}, id)
}

// GetIdentity returns the verified token identity placed by the auth
// middleware. Role is deliberately absent; handlers that gate on role read it
// from the user store per request.
func GetIdentity(ctx context.Context) (security.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity{}).(security.Identity)
	return id, ok
}
