// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"siakad/internal/domain/entity"
)

// Domain-specific errors for profile persistence.
var (
	// ErrSiswaNotFound is returned when a student profile is not found.
	ErrSiswaNotFound = errors.New("siswa not found")
	// ErrSekolahNotFound is returned when a school profile is not found.
	ErrSekolahNotFound = errors.New("sekolah not found")
)

// SiswaAccountRow is the projection returned by the per-school account listing:
// the student and the account it is linked to.
type SiswaAccountRow struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	SiswaID  int64  `json:"siswa_id"`
	Nama     string `json:"nama"`
}

// ProfileRepository defines persistence operations for the student and school
// profile records an account may be linked to.
type ProfileRepository interface {
	// FindSiswaByID retrieves a student profile by its ID.
	FindSiswaByID(ctx context.Context, siswaID int64) (*entity.SiswaProfile, error)

	// FindSekolahByID retrieves a school profile by its ID.
	FindSekolahByID(ctx context.Context, sekolahID int64) (*entity.SekolahProfile, error)

	// LinkSiswa connects a student profile to an account.
	LinkSiswa(ctx context.Context, siswaID, userID int64) error

	// LinkSekolah connects a school profile to an account.
	LinkSekolah(ctx context.Context, sekolahID, userID int64) error

	// ListSiswaBySekolah returns a page of account-holding students of a school.
	ListSiswaBySekolah(ctx context.Context, sekolahID int64, offset, limit int) ([]SiswaAccountRow, error)

	// CountSiswaBySekolah returns the total number of account-holding students of a school.
	CountSiswaBySekolah(ctx context.Context, sekolahID int64) (int64, error)
}
