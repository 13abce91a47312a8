package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// missingTokens are the cell values treated as "no value", next to the empty cell.
var missingTokens = map[string]bool{
	"na":   true,
	"nan":  true,
	"null": true,
	"none": true,
	"n/a":  true,
}

// IsMissing reports whether a raw CSV cell holds no value.
func IsMissing(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || missingTokens[strings.ToLower(s)]
}

// Count is an incident count that may be missing in the source data.
type Count struct {
	Value decimal.Decimal
	Valid bool
}

// NewCount creates a present count from an integer.
func NewCount(n int64) Count {
	return Count{Value: decimal.NewFromInt(n), Valid: true}
}

// NewCountFromFloat creates a present count from a float64.
func NewCountFromFloat(f float64) Count {
	return Count{Value: decimal.NewFromFloat(f), Valid: true}
}

// NewCountFromString parses a count; missing tokens yield an invalid Count.
func NewCountFromString(raw string) (Count, error) {
	var c Count
	err := c.UnmarshalCSV(raw)
	return c, err
}

// IsPositive returns true if the count is present and strictly greater than zero.
func (c Count) IsPositive() bool {
	return c.Valid && c.Value.IsPositive()
}

// Float64 returns the count as float64; missing counts are 0.
func (c Count) Float64() float64 {
	if !c.Valid {
		return 0
	}
	f, _ := c.Value.Float64()
	return f
}

// String renders the count, or "NaN" when missing.
func (c Count) String() string {
	if !c.Valid {
		return "NaN"
	}
	return c.Value.String()
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (c *Count) UnmarshalCSV(raw string) error {
	if IsMissing(raw) {
		*c = Count{}
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid count '%s': %w", raw, err)
	}
	*c = Count{Value: d, Valid: true}
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller. Missing counts are written as empty cells.
func (c Count) MarshalCSV() (string, error) {
	if !c.Valid {
		return "", nil
	}
	return c.Value.String(), nil
}
