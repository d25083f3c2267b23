// Package normalize converts loosely formatted request values into the fixed
// forms the ledger persists: YYYYMMDD date strings and decimal quantities.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"ssms/internal/shared/apperror"
)

const ymdLayout = "20060102"

// Date strips common separators and returns the 8-digit form when the input is
// a real calendar date. "2025-01-31", "2025.01.31" and "20250131" are equal.
func Date(v string) (string, bool) {
	v = strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', '/', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(v))
	if len(v) != 8 {
		return "", false
	}
	if _, err := time.Parse(ymdLayout, v); err != nil {
		return "", false
	}
	return v, true
}

// RequiredDate normalizes a mandatory date field.
func RequiredDate(field, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", apperror.RequiredField(field)
	}
	d, ok := Date(v)
	if !ok {
		return "", apperror.InvalidField(field)
	}
	return d, nil
}

// OptionalDate normalizes a date field where blank means "not supplied".
func OptionalDate(field, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", nil
	}
	d, ok := Date(v)
	if !ok {
		return "", apperror.InvalidField(field)
	}
	return d, nil
}

// Display renders YYYYMMDD as YYYY-MM-DD. Anything else is returned unchanged.
func Display(ymd string) string {
	if len(ymd) != 8 {
		return ymd
	}
	return ymd[:4] + "-" + ymd[4:6] + "-" + ymd[6:]
}

// FromTime formats t as YYYYMMDD.
func FromTime(t time.Time) string {
	return t.Format(ymdLayout)
}

// MonthsBetween counts calendar months from start to end using only the year
// and month digits, so 20250101..20260101 is 12 and 20250101..20251231 is 11.
// ok is false when either value has no numeric YYYYMM prefix.
func MonthsBetween(start, end string) (months int, ok bool) {
	sy, sm, ok1 := yearMonth(start)
	ey, em, ok2 := yearMonth(end)
	if !ok1 || !ok2 {
		return 0, false
	}
	return (ey-sy)*12 + (em - sm), true
}

func yearMonth(v string) (int, int, bool) {
	if len(v) < 6 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(v[:4])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(v[4:6])
	if err != nil {
		return 0, 0, false
	}
	return y, m, true
}
