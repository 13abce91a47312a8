// Package models defines the fire-incident datasets read by the report pipeline.
package models

import "strings"

// Dataset names used in logs and errors.
const (
	DatasetYearSeries    = "year_series"
	DatasetRegionSummary = "region_summary"
	DatasetStateSeries   = "state_series"
)

// Record is implemented by every dataset row.
type Record interface {
	// Complete reports whether no field of the row is missing.
	Complete() bool
	// Count returns the row's incident count.
	Count() Count
}

// YearCount is one row of the national series: incidents per year.
type YearCount struct {
	Year   Year  `csv:"year"`
	Number Count `csv:"number"`
}

// Complete implements Record.
func (r YearCount) Complete() bool { return r.Year.Valid && r.Number.Valid }

// Count implements Record.
func (r YearCount) Count() Count { return r.Number }

// RegionCount is one row of the regional summary: incidents per region.
type RegionCount struct {
	Region string `csv:"region"`
	Number Count  `csv:"number"`
}

// Complete implements Record.
func (r RegionCount) Complete() bool { return !IsMissing(r.Region) && r.Number.Valid }

// Count implements Record.
func (r RegionCount) Count() Count { return r.Number }

// StateCount is one row of the per-state series: incidents per state and year.
type StateCount struct {
	State  string `csv:"state"`
	Year   Year   `csv:"year"`
	Number Count  `csv:"number"`
}

// Complete implements Record.
func (r StateCount) Complete() bool {
	return !IsMissing(r.State) && r.Year.Valid && r.Number.Valid
}

// Count implements Record.
func (r StateCount) Count() Count { return r.Number }

// Label returns the trimmed state name.
func (r StateCount) Label() string { return strings.TrimSpace(r.State) }

// Datasets groups the three inputs of a report run.
type Datasets struct {
	Years   []YearCount
	Regions []RegionCount
	States  []StateCount
}

// Columns required in the CSV header of each dataset.
var (
	YearSeriesColumns    = []string{"year", "number"}
	RegionSummaryColumns = []string{"region", "number"}
	StateSeriesColumns   = []string{"state", "year", "number"}
)
