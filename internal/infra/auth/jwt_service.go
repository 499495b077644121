// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"siakad/config"
	"siakad/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and set-password tokens share the access secret; refresh tokens use
// their own secret so a leaked access key cannot mint refresh tokens.
type jwtService struct {
	accessSecret   string
	refreshSecret  string
	accessTTL      time.Duration
	refreshTTL     time.Duration
	setPasswordTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:   cfg.SecretKey.Access,
		refreshSecret:  cfg.SecretKey.Refresh,
		accessTTL:      cfg.Token.AccessTTL,
		refreshTTL:     cfg.Token.RefreshTTL,
		setPasswordTTL: cfg.Token.SetPasswordTTL,
	}, nil
}

// GenerateAccessToken creates a short-lived token carrying the account ID and role.
func (s *jwtService) GenerateAccessToken(userID int64, role string) (string, error) {
	return s.generateToken(userID, role, s.accessTTL, s.accessSecret)
}

// GenerateRefreshToken creates a long-lived token signed with the refresh secret.
func (s *jwtService) GenerateRefreshToken(userID int64, role string) (string, error) {
	return s.generateToken(userID, role, s.refreshTTL, s.refreshSecret)
}

// GenerateSetPasswordToken creates a one-hour token carrying only the account ID.
func (s *jwtService) GenerateSetPasswordToken(userID int64) (string, error) {
	return s.generateToken(userID, "", s.setPasswordTTL, s.accessSecret)
}

// ParseAccessToken verifies a token against the access secret.
func (s *jwtService) ParseAccessToken(token string) (*service.TokenClaims, error) {
	return s.parseToken(token, s.accessSecret)
}

// ParseRefreshToken verifies a token against the refresh secret.
func (s *jwtService) ParseRefreshToken(token string) (*service.TokenClaims, error) {
	return s.parseToken(token, s.refreshSecret)
}

// ParseSetPasswordToken verifies a set-password token.
func (s *jwtService) ParseSetPasswordToken(token string) (*service.TokenClaims, error) {
	return s.parseToken(token, s.accessSecret)
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID int64, role string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := service.TokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// parseToken verifies the signature and expiry of a token string against a
// secret. Expiry is mapped to service.ErrTokenExpired; every other failure,
// including a wrong signing method, becomes service.ErrTokenInvalid.
func (s *jwtService) parseToken(tokenString string, secret string) (*service.TokenClaims, error) {
	claims := new(service.TokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}
