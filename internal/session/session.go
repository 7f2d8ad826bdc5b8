package session

import (
	"context"
	"time"
)

// TTL is the absolute session lifetime, counted from login.
const TTL = 24 * time.Hour

// Session is the server-side record behind the cookie. It stores
// identity pointers only, never derived authorization state.
type Session struct {
	SessionID     string    // unique session identifier
	UserID        string    // references users.id
	Authenticated bool      // set on successful login
	ExpiresAt     time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error

	// Get returns (nil, nil) when the session does not exist.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Delete is idempotent: deleting an absent session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
