package outmanage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"ssms/internal/audit"
	"ssms/internal/observability/metrics"
	outmanageerrors "ssms/internal/outmanage/errors"
	"ssms/internal/shared/apperror"
	"ssms/internal/shared/dberror"
	"ssms/internal/shared/normalize"
	"ssms/internal/staff"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	ledgerName = "out_contract"
)

//go:generate mockgen -source=outmanage_service.go -destination=mock/outmanage_service_mock.go -package=mock
type Service interface {
	Search(ctx context.Context, tenantID string, req SearchContractRequest) ([]ContractResponse, int64, error)
	CheckDuplicate(ctx context.Context, tenantID string, req DuplicateCheckRequest) (DuplicateResponse, error)
	Create(ctx context.Context, tenantID, actorID string, req CreateContractRequest) (ContractResponse, error)
	Update(ctx context.Context, tenantID, actorID string, req UpdateContractRequest) (ContractResponse, error)
	DeleteMany(ctx context.Context, tenantID, actorID string, keys []ContractKey) (DeleteResult, error)
}

type Options struct {
	// StrictOverlap switches duplicate detection from the boundary test to
	// full interval overlap, which also reports contained periods.
	StrictOverlap bool
}

type service struct {
	db       *sql.DB
	repo     Repository
	staffDir staff.Directory
	audit    audit.Logger
	opts     Options
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, staffDir staff.Directory, auditLog audit.Logger, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("outmanage.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outmanage.service")
	}
	if auditLog == nil {
		auditLog = audit.Nop()
	}
	return &service{
		db:       db,
		repo:     repo,
		staffDir: staffDir,
		audit:    auditLog,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

// DefaultEntitlement derives the entitlement of a span as its month count.
// Unparseable dates give 1 and reversed spans give 0.
func DefaultEntitlement(periodStart, periodEnd string) decimal.Decimal {
	months, ok := normalize.MonthsBetween(periodStart, periodEnd)
	if !ok {
		return decimal.NewFromInt(1)
	}
	if months < 0 {
		months = 0
	}
	return decimal.NewFromInt(int64(months))
}

func (s *service) Search(ctx context.Context, tenantID string, req SearchContractRequest) ([]ContractResponse, int64, error) {
	asOf, err := normalize.OptionalDate("as_of", req.AsOf)
	if err != nil {
		return nil, 0, err
	}

	page, pageSize := req.Paging()

	rows, total, err := s.repo.Search(ctx, tenantID, SearchFilter{
		AsOf:   asOf,
		Name:   strings.TrimSpace(req.Name),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		s.logger.Error("search contracts failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]ContractResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToResponse(r.Contract, r.StaffName))
	}
	return resp, total, nil
}

func (s *service) CheckDuplicate(ctx context.Context, tenantID string, req DuplicateCheckRequest) (DuplicateResponse, error) {
	staffID, candidate, err := validateKeyAndSpan(req.StaffID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return DuplicateResponse{}, err
	}
	exclude, err := normalize.OptionalDate("original_period_start", req.OriginalPeriodStart)
	if err != nil {
		return DuplicateResponse{}, err
	}

	periods, err := s.repo.FindDuplicatePeriods(ctx, tenantID, staffID, candidate, exclude, s.opts.StrictOverlap)
	if err != nil {
		s.logger.Error("duplicate period check failed",
			zap.String("tenant_id", tenantID),
			zap.String("staff_id", staffID),
			zap.Error(err),
		)
		return DuplicateResponse{}, mapRepositoryError(err)
	}
	if len(periods) == 0 {
		return DuplicateResponse{}, nil
	}

	s.logger.Debug("duplicate periods found",
		zap.String("staff_id", staffID),
		zap.String("candidate", candidate.String()),
		zap.Int("count", len(periods)),
	)
	return DuplicateResponse{
		Duplicate:   true,
		Description: Describe(periods),
		Periods:     mapPeriods(periods),
	}, nil
}

func (s *service) Create(ctx context.Context, tenantID, actorID string, req CreateContractRequest) (ContractResponse, error) {
	s.logger.Debug("create contract requested",
		zap.String("tenant_id", tenantID),
		zap.String("actor_id", actorID),
		zap.String("staff_id", req.StaffID),
		zap.String("period_start", req.PeriodStart),
		zap.String("period_end", req.PeriodEnd),
	)

	c, err := s.buildContract(tenantID, actorID, req.StaffID, req.PeriodStart, req.PeriodEnd,
		req.TotalEntitlement, req.ServiceEntitlement, req.Note)
	if err != nil {
		s.logger.Warn("create contract validation failed", zap.Error(err))
		return ContractResponse{}, err
	}

	if err := s.repo.Insert(ctx, &c); err != nil {
		metrics.ObserveLedgerOperation(ledgerName, "create", err)
		if dberror.IsUniqueViolation(err) {
			s.logger.Warn("create contract duplicate key",
				zap.String("staff_id", c.StaffID),
				zap.String("period_start", c.PeriodStart),
			)
			return ContractResponse{}, s.conflictFor(ctx, tenantID, c)
		}
		s.logger.Error("create contract persist failed", zap.Error(err))
		return ContractResponse{}, mapRepositoryError(err)
	}
	metrics.ObserveLedgerOperation(ledgerName, "create", nil)

	s.logger.Info("create contract success",
		zap.String("tenant_id", tenantID),
		zap.String("staff_id", c.StaffID),
		zap.String("period_start", c.PeriodStart),
	)
	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionContractCreated,
		Message:  "contract period created",
		TenantID: tenantID,
		ActorID:  actorID,
		Meta: map[string]any{
			"staff_id":     c.StaffID,
			"period_start": c.PeriodStart,
			"period_end":   c.PeriodEnd,
		},
	})

	return mapToResponse(c, s.staffName(ctx, tenantID, c.StaffID)), nil
}

func (s *service) Update(ctx context.Context, tenantID, actorID string, req UpdateContractRequest) (ContractResponse, error) {
	s.logger.Debug("update contract requested",
		zap.String("tenant_id", tenantID),
		zap.String("actor_id", actorID),
		zap.String("staff_id", req.StaffID),
		zap.String("original_period_start", req.OriginalPeriodStart),
		zap.String("period_start", req.PeriodStart),
	)

	c, err := s.buildContract(tenantID, actorID, req.StaffID, req.PeriodStart, req.PeriodEnd,
		req.TotalEntitlement, req.ServiceEntitlement, req.Note)
	if err != nil {
		s.logger.Warn("update contract validation failed", zap.Error(err))
		return ContractResponse{}, err
	}

	originalStart := c.PeriodStart
	if strings.TrimSpace(req.OriginalPeriodStart) != "" {
		if originalStart, err = normalize.RequiredDate("original_period_start", req.OriginalPeriodStart); err != nil {
			return ContractResponse{}, err
		}
	}
	migrating := originalStart != c.PeriodStart

	existing, err := s.updateInTx(ctx, tenantID, originalStart, &c)
	metrics.ObserveLedgerOperation(ledgerName, "update", err)
	if err != nil {
		if migrating && dberror.IsUniqueViolation(err) {
			// The transaction is closed here, so the stored row can be read.
			return ContractResponse{}, s.conflictFor(ctx, tenantID, c)
		}
		return ContractResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update contract success",
		zap.String("tenant_id", tenantID),
		zap.String("staff_id", c.StaffID),
		zap.String("period_start", c.PeriodStart),
		zap.Bool("key_migrated", migrating),
	)
	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionContractUpdated,
		Message:  "contract period updated",
		TenantID: tenantID,
		ActorID:  actorID,
		Meta: map[string]any{
			"staff_id":        c.StaffID,
			"previous_period": Period{Start: existing.PeriodStart, End: existing.PeriodEnd}.String(),
			"period_start":    c.PeriodStart,
			"period_end":      c.PeriodEnd,
			"key_migrated":    migrating,
		},
	})

	return mapToResponse(c, s.staffName(ctx, tenantID, c.StaffID)), nil
}

// updateInTx replaces the row stored under originalStart with c. When the
// start date changed the old key is deleted and c inserted in the same
// transaction, so a failed insert leaves the original row in place.
func (s *service) updateInTx(ctx context.Context, tenantID, originalStart string, c *Contract) (Contract, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update contract begin tx failed", zap.Error(err))
		return Contract{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByKey(ctx, tenantID, c.StaffID, originalStart)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("update contract lookup failed", zap.Error(err))
		}
		return Contract{}, err
	}

	if originalStart != c.PeriodStart {
		n, err := qtx.Delete(ctx, tenantID, c.StaffID, originalStart)
		if err != nil {
			s.logger.Error("update contract delete old key failed", zap.Error(err))
			return Contract{}, err
		}
		if n == 0 {
			return Contract{}, outmanageerrors.ErrContractNotFound
		}
		if err := qtx.Insert(ctx, c); err != nil {
			s.logger.Warn("update contract insert new key failed, rolling back",
				zap.String("staff_id", c.StaffID),
				zap.String("from", originalStart),
				zap.String("to", c.PeriodStart),
				zap.Error(err),
			)
			return Contract{}, err
		}
	} else {
		n, err := qtx.Update(ctx, c)
		if err != nil {
			s.logger.Error("update contract persist failed", zap.Error(err))
			return Contract{}, err
		}
		if n == 0 {
			return Contract{}, outmanageerrors.ErrContractNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update contract commit failed", zap.Error(err))
		return Contract{}, err
	}
	return *existing, nil
}

// DeleteMany removes each key on its own. A key that is malformed, missing
// or whose statement fails is counted as failed; the batch always completes.
func (s *service) DeleteMany(ctx context.Context, tenantID, actorID string, keys []ContractKey) (DeleteResult, error) {
	if len(keys) == 0 {
		return DeleteResult{}, apperror.RequiredField("keys")
	}

	var result DeleteResult
	deleted := make([]string, 0, len(keys))
	for _, k := range keys {
		staffID := strings.TrimSpace(k.StaffID)
		periodStart, ok := normalize.Date(k.PeriodStart)
		if staffID == "" || !ok {
			result.Failed++
			continue
		}

		n, err := s.repo.Delete(ctx, tenantID, staffID, periodStart)
		switch {
		case err != nil:
			s.logger.Warn("delete contract failed",
				zap.String("staff_id", staffID),
				zap.String("period_start", periodStart),
				zap.Error(err),
			)
			result.Failed++
		case n == 0:
			result.Failed++
		default:
			result.Succeeded++
			deleted = append(deleted, staffID+"/"+periodStart)
		}
	}
	metrics.ObserveBatch(ledgerName, result.Succeeded, result.Failed)

	s.logger.Info("delete contracts finished",
		zap.String("tenant_id", tenantID),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	if result.Succeeded > 0 {
		s.audit.Log(ctx, audit.Entry{
			Action:   audit.ActionContractDeleted,
			Message:  "contract periods deleted",
			TenantID: tenantID,
			ActorID:  actorID,
			Meta:     map[string]any{"keys": deleted, "failed": result.Failed},
		})
	}
	return result, nil
}

func (s *service) buildContract(tenantID, actorID, staffID, start, end string, total, extra normalize.Text, note string) (Contract, error) {
	staffID, span, err := validateKeyAndSpan(staffID, start, end)
	if err != nil {
		return Contract{}, err
	}

	totalEnt, err := normalize.Decimal("total_entitlement", total)
	if err != nil {
		return Contract{}, err
	}
	if !totalEnt.Valid {
		totalEnt = decimal.NewNullDecimal(DefaultEntitlement(span.Start, span.End))
	}
	serviceEnt, err := normalize.DecimalOr("service_entitlement", extra, decimal.Zero)
	if err != nil {
		return Contract{}, err
	}

	return Contract{
		TenantID:           tenantID,
		StaffID:            staffID,
		PeriodStart:        span.Start,
		PeriodEnd:          span.End,
		TotalEntitlement:   totalEnt.Decimal,
		ServiceEntitlement: serviceEnt,
		Note:               note,
		LastEditorID:       actorID,
		LastEditedAt:       s.now(),
	}, nil
}

func validateKeyAndSpan(staffID, start, end string) (string, Period, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return "", Period{}, apperror.RequiredField("staff_id")
	}
	s, err := normalize.RequiredDate("period_start", start)
	if err != nil {
		return "", Period{}, err
	}
	e, err := normalize.RequiredDate("period_end", end)
	if err != nil {
		return "", Period{}, err
	}
	if s > e {
		return "", Period{}, outmanageerrors.ErrInvalidDateRange.WithDetails(map[string]string{
			"period_start": s,
			"period_end":   e,
		})
	}
	return staffID, Period{Start: s, End: e}, nil
}

// conflictFor builds the duplicate-key error, naming the stored period when
// it can still be read.
func (s *service) conflictFor(ctx context.Context, tenantID string, c Contract) error {
	p := Period{Start: c.PeriodStart}
	if existing, err := s.repo.FindByKey(ctx, tenantID, c.StaffID, c.PeriodStart); err == nil {
		p.End = existing.PeriodEnd
	}
	return outmanageerrors.ErrDuplicatePeriod.WithDetails(conflictDetails([]Period{p}))
}

func conflictDetails(periods []Period) map[string]any {
	return map[string]any{
		"description": Describe(periods),
		"periods":     mapPeriods(periods),
	}
}

func (s *service) staffName(ctx context.Context, tenantID, staffID string) string {
	name, err := s.staffDir.NameFor(ctx, tenantID, staffID)
	if err != nil {
		s.logger.Warn("staff name lookup failed", zap.String("staff_id", staffID), zap.Error(err))
		return ""
	}
	return name
}

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, sql.ErrNoRows):
		return outmanageerrors.ErrContractNotFound
	case dberror.IsUniqueViolation(err):
		return outmanageerrors.ErrDuplicatePeriod
	case dberror.IsTransient(err):
		return apperror.Transient(err)
	}
	return err
}

func mapPeriods(periods []Period) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodResponse{PeriodStart: p.Start, PeriodEnd: p.End})
	}
	return out
}

func mapToResponse(c Contract, staffName string) ContractResponse {
	resp := ContractResponse{
		StaffID:            c.StaffID,
		StaffName:          staffName,
		PeriodStart:        c.PeriodStart,
		PeriodEnd:          c.PeriodEnd,
		TotalEntitlement:   c.TotalEntitlement.String(),
		ServiceEntitlement: c.ServiceEntitlement.String(),
		Note:               c.Note,
		LastEditorID:       c.LastEditorID,
	}
	if !c.LastEditedAt.IsZero() {
		resp.LastEditedAt = c.LastEditedAt.Format(time.RFC3339)
	}
	return resp
}
