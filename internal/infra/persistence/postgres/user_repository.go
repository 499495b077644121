// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"siakad/internal/domain/entity"
	domainerrors "siakad/internal/domain/errors"
	"siakad/internal/domain/repository"
	"siakad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUsername retrieves an account by username with its role and any linked
// profiles resolved, so the caller can shape a role-specific login response.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		Preload("Siswa").
		Preload("Sekolah").
		Where("username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&userM), nil
}

// FindByID retrieves an account by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		Preload("Siswa").
		Preload("Sekolah").
		Where("user_id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&userM), nil
}

// Create persists a new account and fills in the generated ID and timestamps.
func (repo *userRepository) Create(ctx context.Context, account *entity.Account) error {
	userM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("username already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid role reference")
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = userM.ID
	account.CreatedAt = userM.CreatedAt
	account.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateRefreshToken overwrites the persisted refresh token in a single-row
// atomic update. Whatever token was stored before is implicitly invalidated.
func (repo *userRepository) UpdateRefreshToken(ctx context.Context, id int64, token string) error {
	return repo.updateColumn(ctx, id, "refresh_token", token)
}

// ClearRefreshToken nulls the persisted refresh token.
func (repo *userRepository) ClearRefreshToken(ctx context.Context, id int64) error {
	return repo.updateColumn(ctx, id, "refresh_token", nil)
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return repo.updateColumn(ctx, id, "password", passwordHash)
}

// UpdateUsername changes the username and returns the account with its linked
// profiles resolved.
func (repo *userRepository) UpdateUsername(ctx context.Context, id int64, username string) (*entity.Account, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("username", username)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrConflict.WrapMessage("username already exists")
		}

		return nil, errors.Wrap(result.Error, "failed to update username")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the account row.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ListAdminSekolah returns a page of school-admin accounts matching the filter.
func (repo *userRepository) ListAdminSekolah(ctx context.Context, filter repository.AdminSekolahFilter, offset, limit int) ([]*entity.Account, error) {
	var userMs []*model.UserModel
	err := repo.adminSekolahQuery(ctx, filter).
		Preload("Role").
		Preload("Sekolah").
		Order("user_id").
		Offset(offset).
		Limit(limit).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list school admin accounts")
	}

	accounts := make([]*entity.Account, 0, len(userMs))
	for _, userM := range userMs {
		accounts = append(accounts, toAccountDomain(userM))
	}

	return accounts, nil
}

// CountAdminSekolah returns the total number of accounts matching the filter.
func (repo *userRepository) CountAdminSekolah(ctx context.Context, filter repository.AdminSekolahFilter) (int64, error) {
	var total int64
	if err := repo.adminSekolahQuery(ctx, filter).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count school admin accounts")
	}

	return total, nil
}

// adminSekolahQuery translates the listing filter into a GORM query.
func (repo *userRepository) adminSekolahQuery(ctx context.Context, filter repository.AdminSekolahFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if len(filter.RoleIDs) > 0 {
		query = query.Where("role_id IN ?", filter.RoleIDs)
	}
	if filter.RoleID != 0 {
		query = query.Where("role_id = ?", filter.RoleID)
	}
	if filter.UsernameContains != "" {
		query = query.Where("username LIKE ?", "%"+filter.UsernameContains+"%")
	}

	return query
}

// updateColumn applies a single-column update and maps a missing row to the
// domain not-found error.
func (repo *userRepository) updateColumn(ctx context.Context, id int64, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update account %s", column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM UserModel to a domain Account entity.
func toAccountDomain(data *model.UserModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.Password,
		RoleID:       data.RoleID,
		Role:         toRoleDomainValue(data.Role),
		RefreshToken: data.RefreshToken,
		Siswa:        toSiswaDomain(data.Siswa),
		Sekolah:      toSekolahDomain(data.Sekolah),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM UserModel for persistence.
func fromAccountDomain(data *entity.Account) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Password:     data.PasswordHash,
		RoleID:       data.RoleID,
		RefreshToken: data.RefreshToken,
	}
}

func toRoleDomainValue(data model.RoleModel) entity.Role {
	return entity.Role{
		ID:   data.ID,
		Name: entity.RoleName(data.Nama),
	}
}
