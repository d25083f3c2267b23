package code

import (
	"context"

	"ssms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=code_repo.go -destination=mock/code_repo_mock.go -package=mock
type Repository interface {
	FindByGroup(ctx context.Context, tenantID, groupCode string) ([]Code, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByGroup(ctx context.Context, tenantID, groupCode string) ([]Code, error) {
	var codes []Code
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("group_code = ?", groupCode).
		Where("use_yn = ?", "Y").
		Order("sort_order ASC, code ASC").
		Find(&codes).Error
	return codes, err
}
