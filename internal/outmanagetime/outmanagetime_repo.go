package outmanagetime

import (
	"context"

	"ssms/internal/shared/normalize"
	"ssms/internal/tenant"

	"gorm.io/gorm"
)

type SummaryFilter struct {
	AsOf string
	Name string
}

//go:generate mockgen -source=outmanagetime_repo.go -destination=mock/outmanagetime_repo_mock.go -package=mock
type Repository interface {
	Summaries(ctx context.Context, tenantID string, filter SummaryFilter) ([]SummaryRow, error)
	Details(ctx context.Context, tenantID, staffID, periodStart, periodEnd string) ([]UsageEntry, error)
	Insert(ctx context.Context, e *UsageEntry) error
	Update(ctx context.Context, e *UsageEntry) (int64, error)
	Delete(ctx context.Context, tenantID string, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const usedExpr = `COALESCE((
	SELECT SUM(u.quantity) FROM out_usages u
	WHERE u.tenant_id = c.tenant_id
	  AND u.staff_id = c.staff_id
	  AND u.approval_status_code = ?
	  AND u.period_start >= c.period_start
	  AND u.period_end <= c.period_end
), 0) AS used`

// Summaries returns one row per contract with its approved usage, ordered
// like the contract search.
func (r *repository) Summaries(ctx context.Context, tenantID string, filter SummaryFilter) ([]SummaryRow, error) {
	q := r.db.WithContext(ctx).
		Table("out_contracts c").
		Select("c.staff_id, COALESCE(s.name, '') AS staff_name, c.period_start, c.period_end, "+
			"c.total_entitlement, c.service_entitlement, "+usedExpr, ApprovedCode).
		Joins("LEFT JOIN staffs s ON s.tenant_id = c.tenant_id AND s.staff_id = c.staff_id").
		Scopes(tenant.ScopeAlias("c", tenantID))

	if filter.AsOf != "" {
		q = q.Where("? BETWEEN c.period_start AND c.period_end", filter.AsOf)
	}
	if filter.Name != "" {
		q = q.Where(`LOWER(s.name) LIKE ? ESCAPE '\'`, normalize.ContainsPattern(filter.Name))
	}

	var rows []SummaryRow
	err := q.Order("c.period_start DESC, c.staff_id ASC").Scan(&rows).Error
	return rows, err
}

// Details lists entries whose own span lies inside [periodStart, periodEnd],
// newest request first with undated requests last.
func (r *repository) Details(ctx context.Context, tenantID, staffID, periodStart, periodEnd string) ([]UsageEntry, error) {
	var entries []UsageEntry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("staff_id = ?", staffID).
		Where("period_start >= ? AND period_end <= ?", periodStart, periodEnd).
		Order("CASE WHEN requested_on IS NULL THEN 1 ELSE 0 END, requested_on DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Insert(ctx context.Context, e *UsageEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *UsageEntry) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&UsageEntry{}).
		Scopes(tenant.Scope(e.TenantID)).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"staff_id":             e.StaffID,
			"leave_type_code":      e.LeaveTypeCode,
			"requested_on":         e.RequestedOn,
			"approval_status_code": e.ApprovalStatusCode,
			"period_start":         e.PeriodStart,
			"period_end":           e.PeriodEnd,
			"quantity":             e.Quantity,
			"note":                 e.Note,
			"last_editor_id":       e.LastEditorID,
			"last_edited_at":       e.LastEditedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, tenantID string, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("id = ?", id).
		Delete(&UsageEntry{})
	return res.RowsAffected, res.Error
}
