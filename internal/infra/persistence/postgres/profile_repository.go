package postgres

import (
	"context"

	"siakad/internal/domain/entity"
	"siakad/internal/domain/repository"
	"siakad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindSiswaByID retrieves a student profile by its ID.
func (repo *profileRepository) FindSiswaByID(ctx context.Context, siswaID int64) (*entity.SiswaProfile, error) {
	var siswaM model.SiswaModel
	err := repo.db.WithContext(ctx).
		Where("siswa_id = ?", siswaID).
		First(&siswaM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSiswaNotFound
		}

		return nil, errors.Wrap(err, "failed to find siswa by id")
	}

	return toSiswaDomain(&siswaM), nil
}

// FindSekolahByID retrieves a school profile by its ID.
func (repo *profileRepository) FindSekolahByID(ctx context.Context, sekolahID int64) (*entity.SekolahProfile, error) {
	var sekolahM model.SekolahModel
	err := repo.db.WithContext(ctx).
		Where("sekolah_id = ?", sekolahID).
		First(&sekolahM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSekolahNotFound
		}

		return nil, errors.Wrap(err, "failed to find sekolah by id")
	}

	return toSekolahDomain(&sekolahM), nil
}

// LinkSiswa connects a student profile to an account.
func (repo *profileRepository) LinkSiswa(ctx context.Context, siswaID, userID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SiswaModel{}).
		Where("siswa_id = ?", siswaID).
		Update("user_id", userID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to link siswa to account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSiswaNotFound
	}

	return nil
}

// LinkSekolah connects a school profile to an account.
func (repo *profileRepository) LinkSekolah(ctx context.Context, sekolahID, userID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SekolahModel{}).
		Where("sekolah_id = ?", sekolahID).
		Update("user_id", userID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to link sekolah to account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSekolahNotFound
	}

	return nil
}

// ListSiswaBySekolah returns a page of account-holding students of a school,
// joined with the owning account row.
func (repo *profileRepository) ListSiswaBySekolah(ctx context.Context, sekolahID int64, offset, limit int) ([]repository.SiswaAccountRow, error) {
	var rows []repository.SiswaAccountRow
	err := repo.db.WithContext(ctx).
		Model(&model.SiswaModel{}).
		Select("users.user_id AS user_id, users.username AS username, siswa.siswa_id AS siswa_id, siswa.nama AS nama").
		Joins("JOIN users ON users.user_id = siswa.user_id").
		Where("siswa.sekolah_asal_id = ?", sekolahID).
		Order("siswa.siswa_id").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list siswa accounts by sekolah")
	}

	return rows, nil
}

// CountSiswaBySekolah returns the total number of account-holding students of a school.
func (repo *profileRepository) CountSiswaBySekolah(ctx context.Context, sekolahID int64) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.SiswaModel{}).
		Where("sekolah_asal_id = ? AND user_id IS NOT NULL", sekolahID).
		Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count siswa accounts by sekolah")
	}

	return total, nil
}

// --- Mapper Functions ---

// toSiswaDomain converts a GORM SiswaModel to a domain SiswaProfile entity.
func toSiswaDomain(data *model.SiswaModel) *entity.SiswaProfile {
	if data == nil {
		return nil
	}

	return &entity.SiswaProfile{
		ID:            data.ID,
		Nama:          data.Nama,
		SekolahAsalID: data.SekolahAsalID,
		UserID:        data.UserID,
	}
}

// toSekolahDomain converts a GORM SekolahModel to a domain SekolahProfile entity.
func toSekolahDomain(data *model.SekolahModel) *entity.SekolahProfile {
	if data == nil {
		return nil
	}

	return &entity.SekolahProfile{
		ID:     data.ID,
		Nama:   data.Nama,
		UserID: data.UserID,
	}
}
