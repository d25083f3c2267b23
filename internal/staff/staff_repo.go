package staff

import (
	"context"
	"errors"

	"ssms/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Directory interface {
	NameFor(ctx context.Context, tenantID, staffID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &repository{db: db}
}

// NameFor returns the display name, or "" when the staff member is unknown.
func (r *repository) NameFor(ctx context.Context, tenantID, staffID string) (string, error) {
	var s Staff
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Select("name").
		First(&s, "staff_id = ?", staffID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return s.Name, nil
}
