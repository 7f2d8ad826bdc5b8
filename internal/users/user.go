package users

import (
	"strings"
	"time"
)

// User is an account record. PasswordHash is only populated by the
// login lookup (FindByEmail); every other read leaves it empty so the
// hash never reaches templates or logs.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Admin        bool
	Age          *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Comments     []Comment
}

// Comment is an append-only log entry owned by a single user.
type Comment struct {
	Body      string
	CreatedAt time.Time
}

// NormalizeEmail applies the store's canonical form: trimmed, lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
