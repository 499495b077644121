// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the read-only reference record restricting which routes an account
// may invoke.
type Role struct {
	ID   int64
	Name RoleName
}

// RoleName represents the named permission class of an account.
type RoleName string

const (
	// RoleSiswa indicates a student account.
	RoleSiswa RoleName = "siswa"
	// RoleAdminSD indicates an elementary-school admin account.
	RoleAdminSD RoleName = "adminSD"
	// RoleAdminSMP indicates a junior-high-school admin account.
	RoleAdminSMP RoleName = "adminSMP"
	// RoleAdminDisdik indicates an education-department admin account.
	RoleAdminDisdik RoleName = "adminDisdik"
	// RoleSuperAdmin indicates the unrestricted administrative account.
	RoleSuperAdmin RoleName = "superAdmin"
)

// String returns the string representation of the RoleName.
func (r RoleName) String() string {
	return string(r)
}

// IsValid checks if the RoleName is part of the fixed role set.
func (r RoleName) IsValid() bool {
	switch r {
	case RoleSiswa, RoleAdminSD, RoleAdminSMP, RoleAdminDisdik, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsSekolahAdmin reports whether the role administers a single school and
// therefore requires a linked sekolah profile.
func (r RoleName) IsSekolahAdmin() bool {
	return r == RoleAdminSD || r == RoleAdminSMP
}

// RoleNames is a slice of RoleName used for per-route allow-lists.
type RoleNames []RoleName

// Contains checks if the allow-list contains a specific role.
func (rs RoleNames) Contains(role RoleName) bool {
	return slices.Contains(rs, role)
}
