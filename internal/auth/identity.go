package auth

import (
	"context"

	"github.com/311384/Eventos-fam/internal/users"
)

// Identity is the per-request projection of session state. It is
// built once by the identity resolver and never mutated afterwards.
// The zero value is the anonymous identity.
type Identity struct {
	User     *users.User
	LoggedIn bool
	IsAdmin  bool
}

// Anonymous is the identity of a request with no usable session.
func Anonymous() Identity {
	return Identity{}
}

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// WithIdentity attaches the resolved identity to the request context.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromContext returns the request identity, or the anonymous
// identity when none was attached.
func IdentityFromContext(ctx context.Context) Identity {
	ident, ok := ctx.Value(identityKey).(Identity)
	if !ok {
		return Anonymous()
	}
	return ident
}
