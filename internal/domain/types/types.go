// Package types contains common types used across the application
package types

import (
	"encoding/json"
	"math"
	"strconv"
)

// roundingScale rounds derived ratios to two decimals.
const roundingScale = 100

// NullFloat64 is a ratio that may be undefined, e.g. an average with no
// dismissals. The zero value is null.
type NullFloat64 struct {
	Value float64
	Valid bool
}

// Some wraps a defined value.
func Some(v float64) NullFloat64 { return NullFloat64{Value: v, Valid: true} }

// Null returns the undefined marker.
func Null() NullFloat64 { return NullFloat64{} }

// Ratio returns num/den, or null when den is zero or the result is not finite.
func Ratio(num, den float64) NullFloat64 {
	if den == 0 {
		return Null()
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	return Some(v)
}

// Float64 returns the value and whether it is defined.
func (n NullFloat64) Float64() (float64, bool) { return n.Value, n.Valid }

// Round2 rounds a defined value to two decimals; null stays null.
func (n NullFloat64) Round2() NullFloat64 {
	if !n.Valid {
		return n
	}
	return Some(Round2(n.Value))
}

// String renders two decimals, or "-" when undefined.
func (n NullFloat64) String() string {
	if !n.Valid {
		return "-"
	}
	return strconv.FormatFloat(n.Value, 'f', 2, 64)
}

// MarshalJSON encodes null when undefined.
func (n NullFloat64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts a number or null.
func (n *NullFloat64) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = Null()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}

// Round2 rounds v to two decimals, ties to even.
func Round2(v float64) float64 {
	return math.RoundToEven(v*roundingScale) / roundingScale
}
