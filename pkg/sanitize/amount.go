package sanitize

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a textual amount that may use "." as grouping
// separator and "," as decimal separator, e.g. "1.234,56".
//
// All "." are removed and the first "," becomes the decimal point before
// parsing. It reports false when the result is not a number.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CoerceAmount returns the amount stored in v. Numbers are used as they
// are, text is parsed with ParseAmount. Anything unparseable or negative
// becomes zero.
func CoerceAmount(v any) decimal.Decimal {
	var (
		d  decimal.Decimal
		ok bool
	)

	switch t := v.(type) {
	case json.Number:
		var err error
		d, err = decimal.NewFromString(t.String())
		ok = err == nil
	case float64:
		d, ok = decimal.NewFromFloat(t), true
	case string:
		d, ok = ParseAmount(t)
	}

	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
