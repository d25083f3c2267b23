package outmanage

import (
	"strings"

	"ssms/internal/shared/normalize"
)

// Conflicts applies the boundary test used by duplicate detection: existing
// conflicts with candidate when either candidate endpoint lies inside it.
// A candidate that strictly contains existing is not reported.
func Conflicts(candidate, existing Period) bool {
	return within(candidate.Start, existing) || within(candidate.End, existing)
}

// Overlaps is the full interval intersection test.
func Overlaps(a, b Period) bool {
	return a.Start <= b.End && a.End >= b.Start
}

func within(d string, p Period) bool {
	return p.Start <= d && d <= p.End
}

func (p Period) String() string {
	return normalize.Display(p.Start) + " ~ " + normalize.Display(p.End)
}

// Describe joins periods as "2025-01-01 ~ 2025-12-31, ...".
func Describe(periods []Period) string {
	parts := make([]string, 0, len(periods))
	for _, p := range periods {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
