package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"ssms/internal/shared/apperror"
)

// Text accepts a JSON string, number or null and keeps the raw text, so a
// quantity typed into a form as "1.5" binds the same way as 1.5. Parsing is
// deferred to Decimal where the field name is known.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

func (t Text) Blank() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Decimal parses a numeric field. Blank yields an invalid NullDecimal so the
// caller can apply its default; non-numeric text is a validation error naming
// the field.
func Decimal(field string, t Text) (decimal.NullDecimal, error) {
	if t.Blank() {
		return decimal.NullDecimal{}, nil
	}
	raw := strings.ReplaceAll(strings.TrimSpace(string(t)), ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, apperror.InvalidField(field).WithDetails(map[string]string{
			"field": field,
			"value": string(t),
		})
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// DecimalOr parses a numeric field and substitutes def when it is blank.
func DecimalOr(field string, t Text, def decimal.Decimal) (decimal.Decimal, error) {
	nd, err := Decimal(field, t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !nd.Valid {
		return def, nil
	}
	return nd.Decimal, nil
}
