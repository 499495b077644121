// Package middleware contains the HTTP middleware of the service.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "siakad/internal/delivery/context"
	"siakad/internal/domain/entity"
	domainerrors "siakad/internal/domain/errors"
	"siakad/internal/domain/service"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the account ID
// and role on the context. Expired tokens get their own error code so the
// client knows to refresh.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithMessage("invalid token format, must be a bearer token")
		}

		claims, err := m.tokenSvc.ParseAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrAccessTokenExpired
			}

			return domainerrors.ErrUnauthorized.WithMessage("invalid token")
		}

		// Set-password tokens share the access secret but carry no role;
		// only tokens from the fixed role set may act as access tokens.
		if !entity.RoleName(claims.Role).IsValid() {
			return domainerrors.ErrUnauthorized.WithMessage("invalid token")
		}

		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetUserRole(c, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that admits only the listed roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.RoleName) echo.MiddlewareFunc {
	allowList := entity.RoleNames(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := entity.RoleName(deliverycontext.GetUserRole(c))
			if !allowList.Contains(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
