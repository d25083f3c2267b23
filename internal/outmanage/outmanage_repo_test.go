package outmanage_test

import (
	"context"
	"testing"

	"ssms/internal/audit"
	"ssms/internal/outmanage"
	outmanageerrors "ssms/internal/outmanage/errors"
	"ssms/internal/shared/apperror"
	"ssms/internal/shared/normalize"
	"ssms/internal/shared/testdb"
	"ssms/internal/staff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const tenantID = "T1"

func decimalOf(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

type ledgerFixture struct {
	db      *gorm.DB
	repo    outmanage.Repository
	service outmanage.Service
}

func setupLedger(t *testing.T, opts outmanage.Options) *ledgerFixture {
	t.Helper()

	db, sqlDB := testdb.Open(t, &outmanage.Contract{}, &staff.Staff{})
	require.NoError(t, db.Create(&staff.Staff{TenantID: tenantID, StaffID: "dev001", Name: "Kim Minsu"}).Error)
	require.NoError(t, db.Create(&staff.Staff{TenantID: tenantID, StaffID: "dev002", Name: "Lee Jiyoung"}).Error)

	repo := outmanage.NewRepository(db)
	svc := outmanage.NewService(sqlDB, repo, staff.NewDirectory(db), audit.Nop(), opts)
	return &ledgerFixture{db: db, repo: repo, service: svc}
}

func (f *ledgerFixture) create(t *testing.T, staffID, start, end string) outmanage.ContractResponse {
	t.Helper()
	resp, err := f.service.Create(context.Background(), tenantID, "admin", outmanage.CreateContractRequest{
		StaffID:     staffID,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	require.NoError(t, err)
	return resp
}

func (f *ledgerFixture) count(t *testing.T, staffID, periodStart string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&outmanage.Contract{}).
		Where("tenant_id = ? AND staff_id = ? AND period_start = ?", tenantID, staffID, periodStart).
		Count(&n).Error)
	return n
}

func TestLedger_CreateDefaultsEntitlement(t *testing.T) {
	f := setupLedger(t, outmanage.Options{})

	resp := f.create(t, "dev001", "2025-01-01", "2026-01-01")

	assert.Equal(t, "20250101", resp.PeriodStart)
	assert.Equal(t, "20260101", resp.PeriodEnd)
	assert.Equal(t, "12", resp.TotalEntitlement)
	assert.Equal(t, "0", resp.ServiceEntitlement)
	assert.Equal(t, "Kim Minsu", resp.StaffName)

	stored, err := f.repo.FindByKey(context.Background(), tenantID, "dev001", "20250101")
	require.NoError(t, err)
	assert.True(t, stored.TotalEntitlement.Equal(decimalOf(12)))
}

func TestLedger_CreateDuplicateKeyIsConflict(t *testing.T) {
	f := setupLedger(t, outmanage.Options{})
	f.create(t, "dev001", "20250101", "20251231")

	_, err := f.service.Create(context.Background(), tenantID, "admin", outmanage.CreateContractRequest{
		StaffID:     "dev001",
		PeriodStart: "20250101",
		PeriodEnd:   "20250630",
	})

	assert.ErrorIs(t, err, outmanageerrors.ErrDuplicatePeriod)
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, 409, httpErr.Status)
	assert.Equal(t, "2025-01-01 ~ 2025-12-31", httpErr.Details.(map[string]any)["description"])
}

func TestLedger_CheckDuplicate(t *testing.T) {
	ctx := context.Background()
	f := setupLedger(t, outmanage.Options{})
	f.create(t, "dev001", "20250101", "20251231")

	t.Run("candidate start inside existing period", func(t *testing.T) {
		resp, err := f.service.CheckDuplicate(ctx, tenantID, outmanage.DuplicateCheckRequest{
			StaffID: "dev001", PeriodStart: "20250601", PeriodEnd: "20250901",
		})
		require.NoError(t, err)
		assert.True(t, resp.Duplicate)
		assert.Equal(t, "2025-01-01 ~ 2025-12-31", resp.Description)
	})

	t.Run("candidate wrapping an existing period is not reported", func(t *testing.T) {
		g := setupLedger(t, outmanage.Options{})
		g.create(t, "dev001", "20250601", "20250901")

		resp, err := g.service.CheckDuplicate(ctx, tenantID, outmanage.DuplicateCheckRequest{
			StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231",
		})
		require.NoError(t, err)
		assert.False(t, resp.Duplicate)
		assert.Empty(t, resp.Description)
	})

	t.Run("strict overlap reports the wrapped period", func(t *testing.T) {
		g := setupLedger(t, outmanage.Options{StrictOverlap: true})
		g.create(t, "dev001", "20250601", "20250901")

		resp, err := g.service.CheckDuplicate(ctx, tenantID, outmanage.DuplicateCheckRequest{
			StaffID: "dev001", PeriodStart: "20250101", PeriodEnd: "20251231",
		})
		require.NoError(t, err)
		assert.True(t, resp.Duplicate)
		assert.Equal(t, "2025-06-01 ~ 2025-09-01", resp.Description)
	})

	t.Run("original period is excluded on update", func(t *testing.T) {
		resp, err := f.service.CheckDuplicate(ctx, tenantID, outmanage.DuplicateCheckRequest{
			StaffID: "dev001", PeriodStart: "20250201", PeriodEnd: "20251231", OriginalPeriodStart: "20250101",
		})
		require.NoError(t, err)
		assert.False(t, resp.Duplicate)
	})

	t.Run("other staff does not conflict", func(t *testing.T) {
		resp, err := f.service.CheckDuplicate(ctx, tenantID, outmanage.DuplicateCheckRequest{
			StaffID: "dev002", PeriodStart: "20250601", PeriodEnd: "20250901",
		})
		require.NoError(t, err)
		assert.False(t, resp.Duplicate)
	})
}

func TestRepository_FindDuplicatePeriodsMatchesConflicts(t *testing.T) {
	ctx := context.Background()
	f := setupLedger(t, outmanage.Options{})
	existing := []outmanage.Period{
		{Start: "20240101", End: "20241231"},
		{Start: "20250301", End: "20250531"},
		{Start: "20251001", End: "20251130"},
	}
	for _, p := range existing {
		f.create(t, "dev001", p.Start, p.End)
	}

	candidates := []outmanage.Period{
		{Start: "20241201", End: "20250115"},
		{Start: "20250101", End: "20251231"},
		{Start: "20250401", End: "20251015"},
		{Start: "20260101", End: "20260331"},
	}
	for _, c := range candidates {
		var want []outmanage.Period
		for _, e := range existing {
			if outmanage.Conflicts(c, e) {
				want = append(want, e)
			}
		}
		got, err := f.repo.FindDuplicatePeriods(ctx, tenantID, "dev001", c, "", false)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, got, "candidate %s", c)
	}
}

func TestLedger_UpdateMigratesKey(t *testing.T) {
	ctx := context.Background()
	f := setupLedger(t, outmanage.Options{})
	f.create(t, "dev001", "20250101", "20251231")

	resp, err := f.service.Update(ctx, tenantID, "editor", outmanage.UpdateContractRequest{
		StaffID:             "dev001",
		OriginalPeriodStart: "20250101",
		PeriodStart:         "20250201",
		PeriodEnd:           "20251231",
		TotalEntitlement:    normalize.Text("10.5"),
		Note:                "moved",
	})
	require.NoError(t, err)

	assert.Equal(t, "20250201", resp.PeriodStart)
	assert.Equal(t, "10.5", resp.TotalEntitlement)
	assert.Equal(t, "editor", resp.LastEditorID)
	assert.Equal(t, int64(0), f.count(t, "dev001", "20250101"))
	assert.Equal(t, int64(1), f.count(t, "dev001", "20250201"))
}

func TestLedger_UpdateInPlaceRederivesEntitlement(t *testing.T) {
	ctx := context.Background()
	f := setupLedger(t, outmanage.Options{})
	f.create(t, "dev001", "20250101", "20251231")

	resp, err := f.service.Update(ctx, tenantID, "editor", outmanage.UpdateContractRequest{
		StaffID:     "dev001",
		PeriodStart: "20250101",
		PeriodEnd:   "20250701",
	})
	require.NoError(t, err)
	assert.Equal(t, "6", resp.TotalEntitlement)
	assert.Equal(t, int64(1), f.count(t, "dev001", "20250101"))
}

func TestLedger_UpdateMigrationFailureKeepsOriginal(t *testing.T) {
	ctx := context.Background()
	f := setupLedger(t, outmanage.Options{})
	f.create(t, "dev001", "20250101", "20250131")
	f.create(t, "dev001", "20250201", "20250228")

	// Moving January onto February's key fails on insert after the delete ran.
	_, err := f.service.Update(ctx, tenantID, "editor", outmanage.UpdateContractRequest{
		StaffID:             "dev001",
		OriginalPeriodStart: "20250101",
		PeriodStart:         "20250201",
		PeriodEnd:           "20250331",
	})

	assert.ErrorIs(t, err, outmanageerrors.ErrDuplicatePeriod)
	details := apperror.ToHTTP(err).Details.(map[string]any)
	assert.Equal(t, "2025-02-01 ~ 2025-02-28", details["description"])
	assert.Equal(t, []outmanage.PeriodResponse{{PeriodStart: "20250201", PeriodEnd: "20250228"}}, details["periods"])
	assert.Equal(t, int64(1), f.count(t, "dev001", "20250101"))
	assert.Equal(t, int64(1), f.count(t, "dev001", "20250201"))

	feb, err := f.repo.FindByKey(ctx, tenantID, "dev001", "20250201")
	require.NoError(t, err)
	assert.Equal(t, "20250228", feb.PeriodEnd)
}

func TestLedger_UpdateMissingIsNotFound(t *testing.T) {
	f := setupLedger(t, outmanage.Options{})

	_, err := f.service.Update(context.Background(), tenantID, "editor", outmanage.UpdateContractRequest{
		StaffID:             "dev001",
		OriginalPeriodStart: "20240101",
		PeriodStart:         "20250101",
		PeriodEnd:           "20251231",
	})

	assert.ErrorIs(t, err, outmanageerrors.ErrContractNotFound)
	assert.Equal(t, int64(0), f.count(t, "dev001", "20250101"))
}

func TestLedger_DeleteManyPartialFailure(t *testing.T) {
	f := setupLedger(t, outmanage.Options{})
	f.create(t, "dev001", "20250101", "20251231")

	result, err := f.service.DeleteMany(context.Background(), tenantID, "admin", []outmanage.ContractKey{
		{StaffID: "dev001", PeriodStart: "20250101"},
		{StaffID: "dev001", PeriodStart: "20300101"},
	})

	require.NoError(t, err)
	assert.Equal(t, outmanage.DeleteResult{Succeeded: 1, Failed: 1}, result)
	assert.Equal(t, int64(0), f.count(t, "dev001", "20250101"))
}

func TestLedger_Search(t *testing.T) {
	ctx := context.Background()
	f := setupLedger(t, outmanage.Options{})
	f.create(t, "dev001", "20240101", "20241231")
	f.create(t, "dev001", "20250101", "20251231")
	f.create(t, "dev002", "20250101", "20251231")
	f.create(t, "ghost", "20250101", "20251231")

	t.Run("orders by period start desc then staff id", func(t *testing.T) {
		rows, total, err := f.service.Search(ctx, tenantID, outmanage.SearchContractRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, rows, 4)
		assert.Equal(t, []string{"dev001", "dev002", "ghost", "dev001"},
			[]string{rows[0].StaffID, rows[1].StaffID, rows[2].StaffID, rows[3].StaffID})
		assert.Equal(t, "20240101", rows[3].PeriodStart)
		assert.Empty(t, rows[2].StaffName)
	})

	t.Run("as of date and case insensitive name", func(t *testing.T) {
		rows, total, err := f.service.Search(ctx, tenantID, outmanage.SearchContractRequest{
			AsOf: "2024-06-15",
			Name: "minsu",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "20240101", rows[0].PeriodStart)
	})

	t.Run("pagination keeps the full total", func(t *testing.T) {
		rows, total, err := f.service.Search(ctx, tenantID, outmanage.SearchContractRequest{Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, rows, 1)
	})

	t.Run("other tenant sees nothing", func(t *testing.T) {
		rows, total, err := f.service.Search(ctx, "T2", outmanage.SearchContractRequest{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)
	})
}

func TestLedger_SearchNameIsLiteral(t *testing.T) {
	ctx := context.Background()
	f := setupLedger(t, outmanage.Options{})
	require.NoError(t, f.db.Create(&staff.Staff{TenantID: tenantID, StaffID: "dev003", Name: "park_jisoo"}).Error)
	f.create(t, "dev001", "20250101", "20251231")
	f.create(t, "dev002", "20250101", "20251231")
	f.create(t, "dev003", "20250101", "20251231")

	cases := map[string][]string{
		"_":      {"dev003"},
		"%":      nil,
		`\`:     nil,
		"K_m":    nil,
		"PARK_J": {"dev003"},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			rows, total, err := f.service.Search(ctx, tenantID, outmanage.SearchContractRequest{Name: name})
			require.NoError(t, err)
			got := make([]string, 0, len(rows))
			for _, r := range rows {
				got = append(got, r.StaffID)
			}
			assert.ElementsMatch(t, want, got)
			assert.Equal(t, int64(len(want)), total)
		})
	}
}
