package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor applied when hashing passwords.
// Matches bcrypt.DefaultCost (10 rounds).
const DefaultBcryptCost = bcrypt.DefaultCost

// HashPassword derives a salted bcrypt hash from the given plaintext
// password. Each call produces a different digest because bcrypt embeds a
// fresh random salt.
//
// Cost values outside the bcrypt range fall back to [DefaultBcryptCost].
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// The underlying comparison is constant-time.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
