package outmanage

import (
	"context"
	"database/sql"

	"ssms/internal/shared/normalize"
	"ssms/internal/tenant"

	"gorm.io/gorm"
)

type SearchFilter struct {
	AsOf   string
	Name   string
	Limit  int
	Offset int
}

//go:generate mockgen -source=outmanage_repo.go -destination=mock/outmanage_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Search(ctx context.Context, tenantID string, filter SearchFilter) ([]ContractWithStaff, int64, error)
	FindDuplicatePeriods(ctx context.Context, tenantID, staffID string, candidate Period, excludePeriodStart string, strict bool) ([]Period, error)
	FindByKey(ctx context.Context, tenantID, staffID, periodStart string) (*Contract, error)
	Insert(ctx context.Context, c *Contract) error
	Update(ctx context.Context, c *Contract) (int64, error)
	Delete(ctx context.Context, tenantID, staffID, periodStart string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn routes statements through the bound transaction, if any.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Search(ctx context.Context, tenantID string, filter SearchFilter) ([]ContractWithStaff, int64, error) {
	base := func() *gorm.DB {
		q := r.conn(ctx).
			Table("out_contracts c").
			Joins("LEFT JOIN staffs s ON s.tenant_id = c.tenant_id AND s.staff_id = c.staff_id").
			Scopes(tenant.ScopeAlias("c", tenantID))
		if filter.AsOf != "" {
			q = q.Where("? BETWEEN c.period_start AND c.period_end", filter.AsOf)
		}
		if filter.Name != "" {
			q = q.Where(`LOWER(s.name) LIKE ? ESCAPE '\'`, normalize.ContainsPattern(filter.Name))
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ContractWithStaff
	q := base().
		Select("c.*, COALESCE(s.name, '') AS staff_name").
		Order("c.period_start DESC, c.staff_id ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	err := q.Scan(&rows).Error
	return rows, total, err
}

// FindDuplicatePeriods mirrors Conflicts in SQL, or Overlaps when strict.
func (r *repository) FindDuplicatePeriods(ctx context.Context, tenantID, staffID string, candidate Period, excludePeriodStart string, strict bool) ([]Period, error) {
	q := r.conn(ctx).
		Model(&Contract{}).
		Scopes(tenant.Scope(tenantID)).
		Where("staff_id = ?", staffID)

	if strict {
		q = q.Where("period_start <= ? AND period_end >= ?", candidate.End, candidate.Start)
	} else {
		q = q.Where("(? BETWEEN period_start AND period_end OR ? BETWEEN period_start AND period_end)",
			candidate.Start, candidate.End)
	}
	if excludePeriodStart != "" {
		q = q.Where("period_start <> ?", excludePeriodStart)
	}

	var periods []Period
	err := q.Select("period_start, period_end").
		Order("period_start ASC").
		Scan(&periods).Error
	return periods, err
}

func (r *repository) FindByKey(ctx context.Context, tenantID, staffID, periodStart string) (*Contract, error) {
	var c Contract
	err := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("staff_id = ? AND period_start = ?", staffID, periodStart).
		First(&c).Error
	return &c, err
}

func (r *repository) Insert(ctx context.Context, c *Contract) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Contract) (int64, error) {
	res := r.conn(ctx).
		Model(&Contract{}).
		Scopes(tenant.Scope(c.TenantID)).
		Where("staff_id = ? AND period_start = ?", c.StaffID, c.PeriodStart).
		Updates(map[string]any{
			"period_end":          c.PeriodEnd,
			"total_entitlement":   c.TotalEntitlement,
			"service_entitlement": c.ServiceEntitlement,
			"note":                c.Note,
			"last_editor_id":      c.LastEditorID,
			"last_edited_at":      c.LastEditedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, tenantID, staffID, periodStart string) (int64, error) {
	res := r.conn(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("staff_id = ? AND period_start = ?", staffID, periodStart).
		Delete(&Contract{})
	return res.RowsAffected, res.Error
}
