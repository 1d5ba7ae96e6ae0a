package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal is a monetary or percentage value kept in the exact textual form the
// backend sent. Computations go through Decimal.Value, never float64.
type Decimal string

// UnmarshalJSON accepts a JSON string or a JSON number and keeps its literal
// text. null leaves the value empty.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decimal: %w", err)
	}
	*d = Decimal(n.String())
	return nil
}

// MarshalJSON always emits the value as a JSON string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(d))
}

// String returns the original text.
func (d Decimal) String() string { return string(d) }

// IsZero reports whether no value was sent.
func (d Decimal) IsZero() bool { return d == "" }

// Value parses the text into an exact decimal.
func (d Decimal) Value() (decimal.Decimal, error) {
	if d == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(d))
}

// IsNegative reports whether the value is below zero. Unparseable text is
// treated as non-negative.
func (d Decimal) IsNegative() bool {
	v, err := d.Value()
	if err != nil {
		return false
	}
	return v.IsNegative()
}

// SumDecimals adds the values exactly. Empty entries are skipped; the first
// unparseable entry aborts the sum.
func SumDecimals(values ...Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range values {
		if v.IsZero() {
			continue
		}
		parsed, err := v.Value()
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid decimal %q: %w", string(v), err)
		}
		total = total.Add(parsed)
	}
	return total, nil
}
