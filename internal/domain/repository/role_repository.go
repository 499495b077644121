// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"siakad/internal/domain/entity"
)

// RoleRepository exposes the fixed role reference data.
type RoleRepository interface {
	// ListRoles returns every role record.
	ListRoles(ctx context.Context) ([]*entity.Role, error)
}
