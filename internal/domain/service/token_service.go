// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a
// single entity.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Expiry is distinguished from every other
// failure so callers can map it to their own error taxonomy.
var (
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned for any other verification failure
	// (bad signature, malformed payload, wrong signing method).
	ErrTokenInvalid = errors.New("token is invalid")
)

// TokenClaims defines the custom claims carried by every token.
// Set-password tokens carry only the account ID; Role is empty for them.
type TokenClaims struct {
	UserID int64    `json:"user_id"`
	Role   string   `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService creates and verifies signed, time-bound tokens for three
// purposes: access, refresh, and password-set. Pure function set, no state.
type TokenService interface {
	// GenerateAccessToken signs {user_id, role} with the access secret.
	// Short lifetime, never persisted.
	GenerateAccessToken(userID int64, role string) (string, error)

	// GenerateRefreshToken signs the same payload with the distinct refresh
	// secret, so access-token compromise cannot forge refresh tokens.
	GenerateRefreshToken(userID int64, role string) (string, error)

	// GenerateSetPasswordToken signs {user_id} with the access secret.
	// Fixed short lifetime, authorizes a single password update call.
	GenerateSetPasswordToken(userID int64) (string, error)

	// ParseAccessToken verifies a token against the access secret.
	ParseAccessToken(token string) (*TokenClaims, error)

	// ParseRefreshToken verifies a token against the refresh secret.
	ParseRefreshToken(token string) (*TokenClaims, error)

	// ParseSetPasswordToken verifies a set-password token.
	ParseSetPasswordToken(token string) (*TokenClaims, error)

	// RefreshTokenTTL returns the configured refresh token lifetime,
	// used for the cookie max-age.
	RefreshTokenTTL() time.Duration
}
