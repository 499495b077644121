// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"siakad/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AdminSekolahFilter narrows the school-admin listing. Zero values mean "no filter".
type AdminSekolahFilter struct {
	UsernameContains string  // Substring match on username.
	RoleID           int64   // Exact role match, 0 for any.
	RoleIDs          []int64 // Restricts results to these roles (the adminSD/adminSMP set).
}

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves an account by its unique username, with the
	// role and any linked profiles resolved.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// Create persists a new account and fills in the generated ID.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateRefreshToken overwrites the persisted refresh token of the account.
	// The overwrite is a single-row atomic update; whatever token was stored
	// before is implicitly invalidated.
	UpdateRefreshToken(ctx context.Context, id int64, token string) error

	// ClearRefreshToken nulls the persisted refresh token. Clearing an already
	// null token is not an error.
	ClearRefreshToken(ctx context.Context, id int64) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// UpdateUsername changes the username and returns the account with its
	// linked profiles resolved, so callers can address the follow-up email.
	UpdateUsername(ctx context.Context, id int64, username string) (*entity.Account, error)

	// Delete removes the account row.
	Delete(ctx context.Context, id int64) error

	// ListAdminSekolah returns a page of school-admin accounts matching the
	// filter, with role and sekolah profile resolved.
	ListAdminSekolah(ctx context.Context, filter AdminSekolahFilter, offset, limit int) ([]*entity.Account, error)

	// CountAdminSekolah returns the total number of accounts matching the filter.
	CountAdminSekolah(ctx context.Context, filter AdminSekolahFilter) (int64, error)
}
