package outmanage_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"ssms/internal/audit"
	"ssms/internal/outmanage"
	outmanageerrors "ssms/internal/outmanage/errors"
	outmanageMock "ssms/internal/outmanage/mock"
	"ssms/internal/shared/apperror"
	staffMock "ssms/internal/staff/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Log(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *outmanageMock.MockRepository
	staff   *staffMock.MockDirectory
	audit   *recordingAudit
	service outmanage.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := outmanageMock.NewMockRepository(ctrl)
	dir := staffMock.NewMockDirectory(ctrl)
	rec := &recordingAudit{}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		staff:   dir,
		audit:   rec,
		service: outmanage.NewService(db, repo, dir, rec, outmanage.Options{}),
	}
}

// ledgerOperationCount reads ssms_ledger_operations_total for the contract ledger.
func ledgerOperationCount(t *testing.T, operation, result string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "ssms_ledger_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["ledger"] == "out_contract" && labels["operation"] == operation && labels["result"] == result {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("validation errors name the field", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cases := []struct {
			req   outmanage.CreateContractRequest
			field string
		}{
			{outmanage.CreateContractRequest{PeriodStart: "20250101", PeriodEnd: "20251231"}, "staff_id"},
			{outmanage.CreateContractRequest{StaffID: "dev001", PeriodEnd: "20251231"}, "period_start"},
			{outmanage.CreateContractRequest{StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "2025-13-01"}, "period_end"},
			{outmanage.CreateContractRequest{StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231", TotalEntitlement: "ten"}, "total_entitlement"},
			{outmanage.CreateContractRequest{StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231", ServiceEntitlement: "1.x"}, "service_entitlement"},
		}
		for _, tc := range cases {
			_, err := deps.service.Create(ctx, tenantID, "admin", tc.req)
			httpErr := apperror.ToHTTP(err)
			assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code, tc.field)
			assert.Equal(t, tc.field, httpErr.Details.(map[string]string)["field"])
		}
	})

	t.Run("reversed span is rejected before store access", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, tenantID, "admin", outmanage.CreateContractRequest{
			StaffID: "dev001", PeriodStart: "20251231", PeriodEnd: "20250101",
		})
		assert.ErrorIs(t, err, outmanageerrors.ErrInvalidDateRange)
	})

	t.Run("success applies defaults and audits", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *outmanage.Contract) error {
				assert.Equal(t, "20250101", c.PeriodStart)
				assert.True(t, c.TotalEntitlement.Equal(decimalOf(12)))
				assert.True(t, c.ServiceEntitlement.IsZero())
				assert.Equal(t, "admin", c.LastEditorID)
				return nil
			})
		deps.staff.EXPECT().NameFor(gomock.Any(), tenantID, "dev001").Return("Kim Minsu", nil)

		resp, err := deps.service.Create(ctx, tenantID, "admin", outmanage.CreateContractRequest{
			StaffID: " dev001 ", PeriodStart: "2025.01.01", PeriodEnd: "2026/01/01", TotalEntitlement: "",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Kim Minsu", resp.StaffName)
		assert.Len(t, deps.audit.entries, 1)
		assert.Equal(t, audit.ActionContractCreated, deps.audit.entries[0].Action)
	})

	t.Run("store failure is not audited", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		_, err := deps.service.Create(ctx, tenantID, "admin", outmanage.CreateContractRequest{
			StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231",
		})
		assert.EqualError(t, err, "boom")
		assert.Empty(t, deps.audit.entries)
	})

	t.Run("connection failure is transient", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)

		_, err := deps.service.Create(ctx, tenantID, "admin", outmanage.CreateContractRequest{
			StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231",
		})
		assert.True(t, apperror.IsTransient(err))
		assert.Equal(t, 503, apperror.ToHTTP(err).Status)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	existing := &outmanage.Contract{TenantID: tenantID, StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231"}
	req := outmanage.UpdateContractRequest{
		StaffID:             "dev001",
		OriginalPeriodStart: "20250101",
		PeriodStart:         "20250201",
		PeriodEnd:           "20251231",
	}

	t.Run("key change deletes and inserts in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		gomock.InOrder(
			deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo),
			deps.repo.EXPECT().FindByKey(gomock.Any(), tenantID, "dev001", "20250101").Return(existing, nil),
			deps.repo.EXPECT().Delete(gomock.Any(), tenantID, "dev001", "20250101").Return(int64(1), nil),
			deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		)
		deps.staff.EXPECT().NameFor(gomock.Any(), tenantID, "dev001").Return("", nil)

		resp, err := deps.service.Update(ctx, tenantID, "editor", req)

		assert.NoError(t, err)
		assert.Equal(t, "20250201", resp.PeriodStart)
		assert.Equal(t, "10", resp.TotalEntitlement)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.Equal(t, true, deps.audit.entries[0].Meta["key_migrated"])
	})

	t.Run("failed insert rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByKey(gomock.Any(), tenantID, "dev001", "20250101").Return(existing, nil)
		deps.repo.EXPECT().Delete(gomock.Any(), tenantID, "dev001", "20250101").Return(int64(1), nil)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := deps.service.Update(ctx, tenantID, "editor", req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.Empty(t, deps.audit.entries)
	})

	t.Run("key clash reports the stored period after rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		gomock.InOrder(
			deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo),
			deps.repo.EXPECT().FindByKey(gomock.Any(), tenantID, "dev001", "20250101").Return(existing, nil),
			deps.repo.EXPECT().Delete(gomock.Any(), tenantID, "dev001", "20250101").Return(int64(1), nil),
			deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"}),
			deps.repo.EXPECT().FindByKey(gomock.Any(), tenantID, "dev001", "20250201").
				Return(&outmanage.Contract{StaffID: "dev001", PeriodStart: "20250201", PeriodEnd: "20250228"}, nil),
		)
		before := ledgerOperationCount(t, "update", "error")

		_, err := deps.service.Update(ctx, tenantID, "editor", req)

		assert.ErrorIs(t, err, outmanageerrors.ErrDuplicatePeriod)
		assert.Equal(t, "2025-02-01 ~ 2025-02-28", apperror.ToHTTP(err).Details.(map[string]any)["description"])
		assert.Equal(t, before+1, ledgerOperationCount(t, "update", "error"))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("begin failure is transient and counted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin().WillReturnError(context.DeadlineExceeded)
		before := ledgerOperationCount(t, "update", "error")

		_, err := deps.service.Update(ctx, tenantID, "editor", req)

		assert.True(t, apperror.IsTransient(err))
		assert.Equal(t, before+1, ledgerOperationCount(t, "update", "error"))
	})

	t.Run("missing original key is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByKey(gomock.Any(), tenantID, "dev001", "20250101").Return(&outmanage.Contract{}, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, tenantID, "editor", req)

		assert.ErrorIs(t, err, outmanageerrors.ErrContractNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("in place update of a vanished row is counted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByKey(gomock.Any(), tenantID, "dev001", "20250101").Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		before := ledgerOperationCount(t, "update", "error")

		_, err := deps.service.Update(ctx, tenantID, "editor", outmanage.UpdateContractRequest{
			StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231",
		})

		assert.ErrorIs(t, err, outmanageerrors.ErrContractNotFound)
		assert.Equal(t, before+1, ledgerOperationCount(t, "update", "error"))
	})

	t.Run("same key updates in place", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByKey(gomock.Any(), tenantID, "dev001", "20250101").Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.staff.EXPECT().NameFor(gomock.Any(), tenantID, "dev001").Return("Kim Minsu", nil)

		_, err := deps.service.Update(ctx, tenantID, "editor", outmanage.UpdateContractRequest{
			StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231", ServiceEntitlement: "2",
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestService_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("failures never abort the batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().Delete(gomock.Any(), tenantID, "dev001", "20250101").Return(int64(1), nil)
		deps.repo.EXPECT().Delete(gomock.Any(), tenantID, "dev001", "20260101").Return(int64(0), errors.New("timeout"))
		deps.repo.EXPECT().Delete(gomock.Any(), tenantID, "dev002", "20250101").Return(int64(1), nil)

		result, err := deps.service.DeleteMany(ctx, tenantID, "admin", []outmanage.ContractKey{
			{StaffID: "dev001", PeriodStart: "2025-01-01"},
			{StaffID: "dev001", PeriodStart: "20260101"},
			{StaffID: "dev002", PeriodStart: "20250101"},
			{StaffID: "dev003", PeriodStart: "not-a-date"},
		})

		assert.NoError(t, err)
		assert.Equal(t, outmanage.DeleteResult{Succeeded: 2, Failed: 2}, result)
		assert.Len(t, deps.audit.entries, 1)
	})

	t.Run("empty batch is a validation error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.DeleteMany(ctx, tenantID, "admin", nil)
		assert.Equal(t, apperror.CodeInvalidInput, apperror.ToHTTP(err).Code)
	})
}

func TestService_CheckDuplicate_PassesStrictFlag(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ctrl := gomock.NewController(t)
	repo := outmanageMock.NewMockRepository(ctrl)
	svc := outmanage.NewService(db, repo, staffMock.NewMockDirectory(ctrl), nil, outmanage.Options{StrictOverlap: true})

	repo.EXPECT().
		FindDuplicatePeriods(gomock.Any(), tenantID, "dev001", outmanage.Period{Start: "20250101", End: "20251231"}, "", true).
		Return([]outmanage.Period{{Start: "20250601", End: "20250901"}}, nil)

	resp, err := svc.CheckDuplicate(context.Background(), tenantID, outmanage.DuplicateCheckRequest{
		StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Duplicate)
	assert.Equal(t, []outmanage.PeriodResponse{{PeriodStart: "20250601", PeriodEnd: "20250901"}}, resp.Periods)
}
