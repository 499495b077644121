// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"siakad/internal/domain/repository"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterSiswaInput defines the data required to register a student account.
type RegisterSiswaInput struct {
	Username string `json:"username" validate:"required,email"`
	RoleID   int64  `json:"role_id" validate:"required,gte=1,lte=4"`
	SiswaID  int64  `json:"siswa_id" validate:"required,gte=1"`
}

// RegisterSekolahAdminInput defines the data required to register a school-admin account.
type RegisterSekolahAdminInput struct {
	Username  string `json:"username" validate:"required,email"`
	RoleID    int64  `json:"role_id" validate:"required,gte=1,lte=4"`
	SekolahID int64  `json:"sekolah_id" validate:"required,gte=1"`
}

// RegisterDisdikAdminInput defines the data required to register a
// department-admin account. No profile is linked.
type RegisterDisdikAdminInput struct {
	Username string `json:"username" validate:"required,email"`
	RoleID   int64  `json:"role_id" validate:"required,gte=1,lte=4"`
}

// UpdateUserInput defines the data for renaming an account's login username.
type UpdateUserInput struct {
	UserID   int64  `json:"-" validate:"required,gte=1"`
	Username string `json:"username" validate:"required,email"`
}

// UpdatePasswordInput carries a set-password token together with the new password.
// The password must contain at least one upper-case letter, one lower-case
// letter, and one digit.
type UpdatePasswordInput struct {
	Token    string `json:"-" validate:"required"`
	Password string `json:"password" validate:"required,min=3,userpassword"`
}

// VerifyUsernameInput re-requests a set-password email for a student account.
type VerifyUsernameInput struct {
	Username string `json:"username" validate:"required,email"`
}

// ListAdminSekolahInput narrows and pages the school-admin listing.
type ListAdminSekolahInput struct {
	Page             int
	Limit            int
	UsernameContains string
	RoleID           int64
}

// --- Output DTOs ---

// UserView is the role-shaped account payload returned by Login. It is a
// closed union: exactly BaseUserView, SiswaUserView, or SekolahAdminUserView.
type UserView interface {
	isUserView()
}

// BaseUserView is the login payload for accounts without a linked profile
// (adminDisdik, superAdmin).
type BaseUserView struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (BaseUserView) isUserView() {}

// SiswaUserView is the login payload for student accounts.
type SiswaUserView struct {
	BaseUserView
	SiswaID   int64  `json:"siswa_id"`
	SiswaNama string `json:"siswa_nama"`
}

// SekolahAdminUserView is the login payload for school-admin accounts.
type SekolahAdminUserView struct {
	BaseUserView
	SekolahID   int64  `json:"sekolah_id"`
	SekolahNama string `json:"sekolah_nama"`
}

// LoginOutput returns the generated tokens and the role-shaped account payload.
// RefreshToken travels to the client only as an HTTP-only cookie; the handler
// keeps it out of the JSON body.
type LoginOutput struct {
	User         UserView
	AccessToken  string
	RefreshToken string
}

// RegisterSiswaOutput returns the newly created student account.
type RegisterSiswaOutput struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Nama     string `json:"nama"`
	SiswaID  int64  `json:"siswa_id"`
}

// RegisterSekolahAdminOutput returns the newly created school-admin account.
type RegisterSekolahAdminOutput struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	RoleID      int64  `json:"role_id"`
	SekolahID   int64  `json:"sekolah_id"`
	SekolahNama string `json:"sekolah_nama"`
}

// RegisterDisdikAdminOutput returns the newly created department-admin account.
type RegisterDisdikAdminOutput struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	RoleID   int64  `json:"role_id"`
}

// UpdateUserOutput returns the renamed account.
type UpdateUserOutput struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// UserIDOutput returns just the affected account ID.
type UserIDOutput struct {
	UserID int64 `json:"user_id"`
}

// RoleView is a single role reference record.
type RoleView struct {
	RoleID   int64  `json:"role_id"`
	RoleNama string `json:"role_nama"`
}

// AdminSekolahView is one row of the school-admin listing. The school fields
// are nil for admins whose school link is missing.
type AdminSekolahView struct {
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	RoleID      int64   `json:"role_id"`
	SekolahID   *int64  `json:"sekolah_id"`
	SekolahNama *string `json:"sekolah_nama"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (HTTP handlers) depends on.
type UserUsecase interface {
	// Login verifies credentials, persists a fresh refresh token, and returns
	// both tokens with a role-shaped account payload.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Logout clears the account's persisted refresh token.
	Logout(ctx context.Context, userID int64) error

	// RegisterSiswa creates a student account linked to an existing siswa
	// record and emails a set-password link.
	RegisterSiswa(ctx context.Context, input RegisterSiswaInput) (*RegisterSiswaOutput, error)

	// RegisterSekolahAdmin creates a school-admin account linked to an
	// existing sekolah record and emails a set-password link.
	RegisterSekolahAdmin(ctx context.Context, input RegisterSekolahAdminInput) (*RegisterSekolahAdminOutput, error)

	// RegisterDisdikAdmin creates a department-admin account with no profile
	// link and emails a set-password link.
	RegisterDisdikAdmin(ctx context.Context, input RegisterDisdikAdminInput) (*RegisterDisdikAdminOutput, error)

	// VerifyUsername re-sends the set-password email for a student account.
	// Reports whether the email was handed off.
	VerifyUsername(ctx context.Context, input VerifyUsernameInput) (bool, error)

	// UpdatePassword sets a new password authorized by a set-password token.
	UpdatePassword(ctx context.Context, input UpdatePasswordInput) (*UserIDOutput, error)

	// UpdateUser renames an account's username and emails a fresh
	// set-password link to the new address.
	UpdateUser(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error)

	// DeleteUser removes an account.
	DeleteUser(ctx context.Context, userID int64) (*UserIDOutput, error)

	// ListSiswaBySekolah pages through the account-holding students of a school.
	ListSiswaBySekolah(ctx context.Context, sekolahID int64, page, limit int) ([]repository.SiswaAccountRow, int64, error)

	// ListAdminSekolah pages through school-admin accounts, always restricted
	// to the adminSD and adminSMP roles.
	ListAdminSekolah(ctx context.Context, input ListAdminSekolahInput) ([]AdminSekolahView, int64, error)

	// ListRoles returns the role reference data.
	ListRoles(ctx context.Context) ([]RoleView, error)
}
