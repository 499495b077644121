// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"siakad/internal/domain/service"
	"siakad/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new hasher with the default bcrypt cost.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted bcrypt hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password failed")
	}

	return string(hashed), nil
}

// Check compares a plaintext password with a stored hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
