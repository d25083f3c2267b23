package outmanage_test

import (
	"testing"

	"ssms/internal/outmanage"

	"github.com/stretchr/testify/assert"
)

func TestConflicts_SymmetricForNonNestedPairs(t *testing.T) {
	cases := []struct {
		name string
		a, b outmanage.Period
		want bool
	}{
		{"disjoint", outmanage.Period{Start: "20250101", End: "20250331"}, outmanage.Period{Start: "20250401", End: "20250630"}, false},
		{"partial overlap", outmanage.Period{Start: "20250101", End: "20250630"}, outmanage.Period{Start: "20250401", End: "20251231"}, true},
		{"touching boundary", outmanage.Period{Start: "20250101", End: "20250401"}, outmanage.Period{Start: "20250401", End: "20250630"}, true},
		{"identical", outmanage.Period{Start: "20250101", End: "20251231"}, outmanage.Period{Start: "20250101", End: "20251231"}, true},
		{"shared start", outmanage.Period{Start: "20250101", End: "20250630"}, outmanage.Period{Start: "20250101", End: "20251231"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, outmanage.Conflicts(tc.a, tc.b))
			assert.Equal(t, outmanage.Conflicts(tc.a, tc.b), outmanage.Conflicts(tc.b, tc.a))
			assert.Equal(t, outmanage.Overlaps(tc.a, tc.b), outmanage.Overlaps(tc.b, tc.a))
		})
	}
}

func TestConflicts_ContainedCandidateGap(t *testing.T) {
	outer := outmanage.Period{Start: "20250101", End: "20251231"}
	inner := outmanage.Period{Start: "20250601", End: "20250901"}

	// A candidate inside an existing period has its start inside it.
	assert.True(t, outmanage.Conflicts(inner, outer))
	// A candidate wrapping an existing period has neither endpoint inside it
	// and is not reported by the boundary test.
	assert.False(t, outmanage.Conflicts(outer, inner))
	// The interval test reports both directions.
	assert.True(t, outmanage.Overlaps(outer, inner))
	assert.True(t, outmanage.Overlaps(inner, outer))
}

func TestDescribe(t *testing.T) {
	got := outmanage.Describe([]outmanage.Period{
		{Start: "20250101", End: "20251231"},
		{Start: "20260101", End: "20260630"},
	})
	assert.Equal(t, "2025-01-01 ~ 2025-12-31, 2026-01-01 ~ 2026-06-30", got)
	assert.Empty(t, outmanage.Describe(nil))
}

func TestDefaultEntitlement(t *testing.T) {
	assert.True(t, outmanage.DefaultEntitlement("20250101", "20260101").Equal(decimalOf(12)))
	assert.True(t, outmanage.DefaultEntitlement("20250101", "20251231").Equal(decimalOf(11)))
	assert.True(t, outmanage.DefaultEntitlement("20250301", "20250101").Equal(decimalOf(0)))
	assert.True(t, outmanage.DefaultEntitlement("2025xx01", "20251231").Equal(decimalOf(1)))
}
