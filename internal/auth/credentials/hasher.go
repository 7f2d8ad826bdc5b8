package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for interactive logins.
const Cost = bcrypt.DefaultCost

// Hash hashes a plaintext password with bcrypt. The salt is random,
// so hashing the same input twice yields different outputs.
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether password matches hash. A malformed or empty
// hash verifies false; no error ever reaches the caller.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
