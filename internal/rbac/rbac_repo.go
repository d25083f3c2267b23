package rbac

import (
	"context"

	"ssms/internal/tenant"

	"gorm.io/gorm"
)

// RolePermissionRow grants one action on one resource to a role inside a tenant.
type RolePermissionRow struct {
	TenantID string `gorm:"type:varchar(20);primaryKey"`
	Role     string `gorm:"type:varchar(40);primaryKey"`
	Resource string `gorm:"type:varchar(60);primaryKey"`
	Action   string `gorm:"type:varchar(20);primaryKey"`
}

func (RolePermissionRow) TableName() string {
	return "role_permissions"
}

type Repository interface {
	GetRolePermissions(ctx context.Context, tenantID string) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePermissions(ctx context.Context, tenantID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Order("role, resource, action").
		Find(&result).Error
	return result, err
}
