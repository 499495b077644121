// Package entity contains the core business objects of the project.
package entity

// SiswaProfile is the student record an Account may be linked to. The link is
// exclusive: a siswa belongs to at most one account and vice versa.
type SiswaProfile struct {
	ID            int64  // Primary identifier of the student.
	Nama          string // Display name of the student.
	SekolahAsalID int64  // The school the student originates from.
	UserID        *int64 // Linked account ID, nil while the student has no account yet.
}

// SekolahProfile is the school record a school-admin Account may be linked to.
type SekolahProfile struct {
	ID     int64  // Primary identifier of the school.
	Nama   string // Display name of the school.
	UserID *int64 // Linked admin account ID, nil while the school has no admin account yet.
}
