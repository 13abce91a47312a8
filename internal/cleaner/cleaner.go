// Package cleaner drops incomplete and non-positive rows from the datasets.
package cleaner

import (
	"errors"

	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/reporterror"
)

// Stats describes the effect of cleaning one dataset.
type Stats struct {
	Dataset string
	Read    int
	Kept    int
}

// Dropped returns the number of removed rows.
func (s Stats) Dropped() int {
	return s.Read - s.Kept
}

// Clean returns a new slice holding the rows that have no missing field and
// a count strictly greater than zero, in their original order.
func Clean[T models.Record](rows []T) []T {
	kept := make([]T, 0, len(rows))
	for _, row := range rows {
		if row.Complete() && row.Count().IsPositive() {
			kept = append(kept, row)
		}
	}
	return kept
}

// CleanAll cleans every dataset. Datasets left without rows are reported as
// *reporterror.EmptyDatasetError, joined into one error; the cleaned data is
// returned either way.
func CleanAll(ds models.Datasets) (models.Datasets, []Stats, error) {
	out := models.Datasets{
		Years:   Clean(ds.Years),
		Regions: Clean(ds.Regions),
		States:  Clean(ds.States),
	}
	stats := []Stats{
		{Dataset: models.DatasetYearSeries, Read: len(ds.Years), Kept: len(out.Years)},
		{Dataset: models.DatasetRegionSummary, Read: len(ds.Regions), Kept: len(out.Regions)},
		{Dataset: models.DatasetStateSeries, Read: len(ds.States), Kept: len(out.States)},
	}

	var errs []error
	for _, s := range stats {
		if s.Kept == 0 {
			errs = append(errs, &reporterror.EmptyDatasetError{Dataset: s.Dataset})
		}
	}
	return out, stats, errors.Join(errs...)
}
