package postgres

import (
	"context"

	"siakad/internal/domain/entity"
	"siakad/internal/domain/repository"
	"siakad/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// ListRoles returns every role record.
func (repo *roleRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var roleMs []*model.RoleModel
	if err := repo.db.WithContext(ctx).Order("role_id").Find(&roleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleMs))
	for _, roleM := range roleMs {
		role := toRoleDomainValue(*roleM)
		roles = append(roles, &role)
	}

	return roles, nil
}
