package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// yearDateLayouts are accepted next to plain integer years.
var yearDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// Year is a calendar year read once from the source data. It is used as a
// category label by the bar chart and as a date by the time series.
type Year struct {
	Value int
	Valid bool
}

// NewYear creates a present year.
func NewYear(y int) Year {
	return Year{Value: y, Valid: true}
}

// ParseYear parses "2000", "2000.0" or a date such as "2000-01-01".
func ParseYear(raw string) (Year, error) {
	var y Year
	err := y.UnmarshalCSV(raw)
	return y, err
}

// Label returns the year as a category label.
func (y Year) Label() string {
	if !y.Valid {
		return ""
	}
	return strconv.Itoa(y.Value)
}

// Date returns 1 January of the year in UTC.
func (y Year) Date() time.Time {
	return time.Date(y.Value, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (y *Year) UnmarshalCSV(raw string) error {
	if IsMissing(raw) {
		*y = Year{}
		return nil
	}
	s := strings.TrimSpace(raw)

	if n, err := strconv.Atoi(s); err == nil {
		*y = NewYear(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		*y = NewYear(int(f))
		return nil
	}
	for _, layout := range yearDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*y = NewYear(t.Year())
			return nil
		}
	}
	return fmt.Errorf("invalid year '%s'", raw)
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (y Year) MarshalCSV() (string, error) {
	return y.Label(), nil
}
