package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/311384/Eventos-fam/internal/auth/credentials"
)

// EnsureAdmin creates the bootstrap admin account if no user with the
// given email exists yet. It reports whether a user was created.
func EnsureAdmin(ctx context.Context, store Store, name, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, errors.New("users: admin email and password are required")
	}
	if name == "" {
		name = "Administrador"
	}

	_, err := store.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, fmt.Errorf("users: seed lookup: %w", err)
	}

	hash, err := credentials.Hash(password)
	if err != nil {
		return false, fmt.Errorf("users: seed hash: %w", err)
	}

	admin := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Admin:        true,
	}

	if err := store.Insert(ctx, admin); err != nil {
		// A concurrent seeder won the race; the account exists.
		if errors.Is(err, ErrDuplicateEmail) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
