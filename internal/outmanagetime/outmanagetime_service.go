package outmanagetime

import (
	"context"
	"strings"
	"time"

	"ssms/internal/audit"
	"ssms/internal/code"
	"ssms/internal/observability/metrics"
	outmanagetimeerrors "ssms/internal/outmanagetime/errors"
	"ssms/internal/shared/apperror"
	"ssms/internal/shared/dberror"
	"ssms/internal/shared/normalize"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const ledgerName = "out_usage"

//go:generate mockgen -source=outmanagetime_service.go -destination=mock/outmanagetime_service_mock.go -package=mock
type Service interface {
	ListSummary(ctx context.Context, tenantID string, req SummaryRequest) ([]SummaryResponse, error)
	ListDetail(ctx context.Context, tenantID string, req DetailRequest) ([]UsageEntryResponse, error)
	Save(ctx context.Context, tenantID, actorID string, req SaveUsageRequest) (UsageEntryResponse, error)
	DeleteDetails(ctx context.Context, tenantID, actorID string, ids []int64) (bool, error)
}

type service struct {
	repo   Repository
	codes  code.Lookup
	audit  audit.Logger
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, codes code.Lookup, auditLog audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("outmanagetime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outmanagetime.service")
	}
	if auditLog == nil {
		auditLog = audit.Nop()
	}
	return &service{
		repo:   repo,
		codes:  codes,
		audit:  auditLog,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) ListSummary(ctx context.Context, tenantID string, req SummaryRequest) ([]SummaryResponse, error) {
	asOf, err := normalize.OptionalDate("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Summaries(ctx, tenantID, SummaryFilter{
		AsOf: asOf,
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		s.logger.Error("list usage summary failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]SummaryResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, mapToSummary(r))
	}
	return resp, nil
}

func (s *service) ListDetail(ctx context.Context, tenantID string, req DetailRequest) ([]UsageEntryResponse, error) {
	staffID := strings.TrimSpace(req.StaffID)
	if staffID == "" {
		return nil, apperror.RequiredField("staff_id")
	}
	start, end, err := validateSpan(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Details(ctx, tenantID, staffID, start, end)
	if err != nil {
		s.logger.Error("list usage detail failed",
			zap.String("tenant_id", tenantID),
			zap.String("staff_id", staffID),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	leaveTypes := s.codeNames(ctx, tenantID, code.GroupLeaveType)
	statuses := s.codeNames(ctx, tenantID, code.GroupApprovalStatus)

	resp := make([]UsageEntryResponse, 0, len(entries))
	for _, e := range entries {
		r := mapToEntry(e)
		r.LeaveTypeName = displayName(leaveTypes, r.LeaveTypeCode)
		r.ApprovalStatusName = displayName(statuses, r.ApprovalStatusCode)
		resp = append(resp, r)
	}
	return resp, nil
}

// Save inserts when req.ID is nil and otherwise rewrites every mutable
// field of that row. The period is not checked against a contract.
func (s *service) Save(ctx context.Context, tenantID, actorID string, req SaveUsageRequest) (UsageEntryResponse, error) {
	s.logger.Debug("save usage requested",
		zap.String("tenant_id", tenantID),
		zap.String("actor_id", actorID),
		zap.String("staff_id", req.StaffID),
		zap.Bool("has_id", req.ID != nil),
	)

	e, err := s.buildEntry(tenantID, actorID, req)
	if err != nil {
		s.logger.Warn("save usage validation failed", zap.Error(err))
		return UsageEntryResponse{}, err
	}

	if req.ID == nil {
		err = s.repo.Insert(ctx, &e)
		metrics.ObserveLedgerOperation(ledgerName, "insert", err)
		if err != nil {
			s.logger.Error("insert usage failed", zap.Error(err))
			return UsageEntryResponse{}, mapRepositoryError(err)
		}
	} else {
		e.ID = *req.ID
		n, err := s.repo.Update(ctx, &e)
		metrics.ObserveLedgerOperation(ledgerName, "update", err)
		if err != nil {
			s.logger.Error("update usage failed", zap.Int64("id", e.ID), zap.Error(err))
			return UsageEntryResponse{}, mapRepositoryError(err)
		}
		if n == 0 {
			return UsageEntryResponse{}, outmanagetimeerrors.ErrUsageNotFound.WithDetails(map[string]int64{"id": e.ID})
		}
	}

	s.logger.Info("save usage success",
		zap.String("tenant_id", tenantID),
		zap.Int64("id", e.ID),
		zap.String("staff_id", e.StaffID),
	)
	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionUsageSaved,
		Message:  "usage entry saved",
		TenantID: tenantID,
		ActorID:  actorID,
		Meta: map[string]any{
			"id":                  e.ID,
			"staff_id":            e.StaffID,
			"quantity":            e.Quantity.String(),
			"period_start":        e.PeriodStart,
			"inserted":            req.ID == nil,
			"counts_toward_usage": ParseApprovalStatus(deref(e.ApprovalStatusCode)).CountsTowardUsage(),
		},
	})

	return mapToEntry(e), nil
}

// DeleteDetails attempts every id and reports whether any row went away.
// When nothing was removed and some statement failed, the store error is
// returned instead of false.
func (s *service) DeleteDetails(ctx context.Context, tenantID, actorID string, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return false, apperror.RequiredField("ids")
	}

	var deleted, missing int
	var lastErr error
	removed := make([]int64, 0, len(ids))
	for _, id := range ids {
		n, err := s.repo.Delete(ctx, tenantID, id)
		switch {
		case err != nil:
			s.logger.Warn("delete usage failed", zap.Int64("id", id), zap.Error(err))
			lastErr = err
		case n == 0:
			missing++
		default:
			deleted++
			removed = append(removed, id)
		}
	}
	failed := len(ids) - deleted
	metrics.ObserveBatch(ledgerName, deleted, failed)

	s.logger.Info("delete usage finished",
		zap.String("tenant_id", tenantID),
		zap.Int("deleted", deleted),
		zap.Int("missing", missing),
		zap.Int("errored", failed-missing),
	)

	if deleted == 0 {
		if lastErr != nil {
			return false, mapRepositoryError(lastErr)
		}
		return false, nil
	}

	s.audit.Log(ctx, audit.Entry{
		Action:   audit.ActionUsageDeleted,
		Message:  "usage entries deleted",
		TenantID: tenantID,
		ActorID:  actorID,
		Meta:     map[string]any{"ids": removed},
	})
	return true, nil
}

func (s *service) buildEntry(tenantID, actorID string, req SaveUsageRequest) (UsageEntry, error) {
	staffID := strings.TrimSpace(req.StaffID)
	if staffID == "" {
		return UsageEntry{}, apperror.RequiredField("staff_id")
	}
	start, end, err := validateSpan(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return UsageEntry{}, err
	}
	requestedOn, err := normalize.OptionalDate("requested_on", req.RequestedOn)
	if err != nil {
		return UsageEntry{}, err
	}
	quantity, err := normalize.DecimalOr("quantity", req.Quantity, decimal.Zero)
	if err != nil {
		return UsageEntry{}, err
	}

	return UsageEntry{
		TenantID:           tenantID,
		StaffID:            staffID,
		LeaveTypeCode:      optional(req.LeaveTypeCode),
		RequestedOn:        optional(requestedOn),
		ApprovalStatusCode: optional(req.ApprovalStatusCode),
		PeriodStart:        start,
		PeriodEnd:          end,
		Quantity:           quantity,
		Note:               req.Note,
		LastEditorID:       actorID,
		LastEditedAt:       s.now(),
	}, nil
}

// codeNames loads a code group for display. A failed lookup leaves raw codes.
func (s *service) codeNames(ctx context.Context, tenantID, group string) map[string]string {
	names, err := s.codes.Names(ctx, tenantID, group)
	if err != nil {
		s.logger.Warn("code lookup failed, showing raw codes",
			zap.String("group_code", group),
			zap.Error(err),
		)
		return nil
	}
	return names
}

func displayName(names map[string]string, c string) string {
	if name, ok := names[c]; ok && c != "" {
		return name
	}
	return c
}

func validateSpan(start, end string) (string, string, error) {
	s, err := normalize.RequiredDate("period_start", start)
	if err != nil {
		return "", "", err
	}
	e, err := normalize.RequiredDate("period_end", end)
	if err != nil {
		return "", "", err
	}
	if s > e {
		return "", "", outmanagetimeerrors.ErrInvalidDateRange.WithDetails(map[string]string{
			"period_start": s,
			"period_end":   e,
		})
	}
	return s, e, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func mapRepositoryError(err error) error {
	if dberror.IsTransient(err) {
		return apperror.Transient(err)
	}
	return err
}

func mapToSummary(r SummaryRow) SummaryResponse {
	total := r.TotalEntitlement.Add(r.ServiceEntitlement)
	return SummaryResponse{
		StaffID:            r.StaffID,
		StaffName:          r.StaffName,
		PeriodStart:        r.PeriodStart,
		PeriodEnd:          r.PeriodEnd,
		TotalEntitlement:   r.TotalEntitlement.String(),
		ServiceEntitlement: r.ServiceEntitlement.String(),
		Total:              total.String(),
		Used:               r.Used.String(),
		Remaining:          total.Sub(r.Used).String(),
	}
}

func mapToEntry(e UsageEntry) UsageEntryResponse {
	status := deref(e.ApprovalStatusCode)
	resp := UsageEntryResponse{
		ID:                 e.ID,
		StaffID:            e.StaffID,
		LeaveTypeCode:      deref(e.LeaveTypeCode),
		RequestedOn:        deref(e.RequestedOn),
		ApprovalStatusCode: status,
		ApprovalStatus:     ParseApprovalStatus(status).String(),
		PeriodStart:        e.PeriodStart,
		PeriodEnd:          e.PeriodEnd,
		Quantity:           e.Quantity.String(),
		Note:               e.Note,
		LastEditorID:       e.LastEditorID,
	}
	if !e.LastEditedAt.IsZero() {
		resp.LastEditedAt = e.LastEditedAt.Format(time.RFC3339)
	}
	return resp
}
