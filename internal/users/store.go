package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the target user does not exist.
	ErrNotFound = errors.New("users: not found")

	// ErrDuplicateEmail is returned when a create or update collides
	// with the unique email constraint. Concurrent duplicate
	// registrations are resolved by the store constraint; the
	// later-committing request sees this error.
	ErrDuplicateEmail = errors.New("users: email already registered")
)

// Update carries the mutable profile fields. An empty PasswordHash
// keeps the stored hash.
type Update struct {
	Name         string
	Email        string
	Age          *int
	PasswordHash string
}

// Store is the user persistence contract. Every mutation refreshes
// the record's updated_at explicitly.
type Store interface {
	Insert(ctx context.Context, u *User) error

	// FindByEmail matches case-insensitively and includes the
	// password hash. It exists for credential verification only.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID excludes the password hash and loads the user's
	// comments oldest-first.
	FindByID(ctx context.Context, id string) (*User, error)

	// List excludes password hashes and comments.
	List(ctx context.Context) ([]User, error)

	Update(ctx context.Context, id string, upd Update) error
	SetAdmin(ctx context.Context, id string, admin bool) error
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, userID, body string) error
}
