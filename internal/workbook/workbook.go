// Package workbook writes the cleaned datasets to an Excel workbook, one
// sheet per dataset.
package workbook

import (
	"fmt"

	"fjacquet/fire-report/internal/fileutils"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/reporterror"

	"github.com/xuri/excelize/v2"
)

// Write stores ds in path, replacing any existing file. Sheets are named
// after the datasets and start with the CSV header row.
func Write(ds models.Datasets, path string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook", logging.F(logging.FieldFile, path))
		}
	}()

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
	}{
		{models.DatasetYearSeries, models.YearSeriesColumns, yearRows(ds.Years)},
		{models.DatasetRegionSummary, models.RegionSummaryColumns, regionRows(ds.Regions)},
		{models.DatasetStateSeries, models.StateSeriesColumns, stateRows(ds.States)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("rename sheet %s: %w", s.name, err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			return err
		}
		logger.Debug("Wrote sheet",
			logging.F(logging.FieldDataset, s.name),
			logging.F(logging.FieldCount, len(s.rows)))
	}

	if err := fileutils.EnsureParentDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return &reporterror.FileError{Op: "write", Path: path, Err: err}
	}
	logger.Info("Wrote workbook", logging.F(logging.FieldFile, path))
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("write header of %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func yearRows(rows []models.YearCount) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = []interface{}{r.Year.Value, r.Number.Float64()}
	}
	return out
}

func regionRows(rows []models.RegionCount) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = []interface{}{r.Region, r.Number.Float64()}
	}
	return out
}

func stateRows(rows []models.StateCount) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = []interface{}{r.Label(), r.Year.Value, r.Number.Float64()}
	}
	return out
}
