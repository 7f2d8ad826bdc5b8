package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/311384/Eventos-fam/internal/auth/credentials"
	"github.com/311384/Eventos-fam/internal/users"
)

// ErrInvalidCredentials covers both an unknown email and a wrong
// password, so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

type Service struct {
	users users.Store
}

func NewService(store users.Store) *Service {
	return &Service{users: store}
}

// Authenticate verifies an email/password pair and returns the
// matching user with the password hash stripped. Store faults are
// returned as-is so the caller can surface a 500-class outcome.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*users.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, users.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("auth: lookup user: %w", err)
	}

	if !credentials.Verify(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	u.PasswordHash = ""
	return u, nil
}
