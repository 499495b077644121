// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the login-capable identity in the system. It carries the
// credentials and, through its Role and the optional profile links, determines
// what the holder may do and how a login response is shaped.
type Account struct {
	ID           int64           // Primary identifier of the account.
	Username     string          // Unique, email-shaped login identifier.
	PasswordHash string          // bcrypt hash of the password. Never exposed outside the domain.
	RoleID       int64           // Foreign key to the account's role.
	Role         Role            // The resolved role record.
	RefreshToken *string         // The single persisted refresh token. Nil when logged out.
	Siswa        *SiswaProfile   // Linked student profile. Nil unless the account belongs to a siswa.
	Sekolah      *SekolahProfile // Linked school profile. Nil unless the account belongs to a school admin.
	CreatedAt    time.Time       // Timestamp of account creation.
	UpdatedAt    *time.Time      // Timestamp of the last modification, nil if never updated.
}
