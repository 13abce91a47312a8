// Package loader reads the fire-incident datasets from CSV files.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/fire-report/internal/fileutils"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/reporterror"

	"github.com/gocarina/gocsv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// InputPaths names the three source files of a report run.
type InputPaths struct {
	YearSeries string
	Regions    string
	States     string
}

// Loader decodes dataset files with a fixed delimiter.
type Loader struct {
	delimiter rune
	logger    logging.Logger
}

// New creates a Loader. A zero delimiter means ','.
func New(delimiter rune, logger logging.Logger) *Loader {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{delimiter: delimiter, logger: logger}
}

// LoadAll loads the three datasets in order. The first failure aborts.
func (l *Loader) LoadAll(paths InputPaths) (models.Datasets, error) {
	var ds models.Datasets
	var err error

	if ds.Years, err = l.LoadYearSeries(paths.YearSeries); err != nil {
		return models.Datasets{}, err
	}
	if ds.Regions, err = l.LoadRegions(paths.Regions); err != nil {
		return models.Datasets{}, err
	}
	if ds.States, err = l.LoadStateSeries(paths.States); err != nil {
		return models.Datasets{}, err
	}
	return ds, nil
}

// LoadYearSeries reads a year,number file.
func (l *Loader) LoadYearSeries(path string) ([]models.YearCount, error) {
	return ReadCSVFile[models.YearCount](path, models.YearSeriesColumns, l.delimiter, l.logger)
}

// LoadRegions reads a region,number file.
func (l *Loader) LoadRegions(path string) ([]models.RegionCount, error) {
	return ReadCSVFile[models.RegionCount](path, models.RegionSummaryColumns, l.delimiter, l.logger)
}

// LoadStateSeries reads a state,year,number file.
func (l *Loader) LoadStateSeries(path string) ([]models.StateCount, error) {
	return ReadCSVFile[models.StateCount](path, models.StateSeriesColumns, l.delimiter, l.logger)
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv after
// checking that the header holds every required column.
// TRow is the struct type that maps to the CSV columns. Rows shorter than the
// header leave the absent fields missing; longer rows are a *ParseError.
func ReadCSVFile[TRow any](filePath string, columns []string, delimiter rune, logger logging.Logger) ([]TRow, error) {
	log := logger.WithField(logging.FieldFile, filePath)
	log.Debug("Reading CSV file", logging.F(logging.FieldDelimiter, string(delimiter)))

	data, err := os.ReadFile(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, &reporterror.FileError{Op: "open", Path: filePath, Err: err}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	tbl, err := readTable(filePath, data, columns, delimiter)
	if err != nil {
		log.WithError(err).Error("CSV structure check failed")
		return nil, err
	}

	var rows []TRow
	if err := gocsv.UnmarshalCSV(newReader(bytes.NewReader(data), delimiter), &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, tbl.parseError(filePath, err)
	}

	log.Info("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// newReader accepts rows of any width; readTable enforces the upper bound.
func newReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader
}

// table is the raw content of a CSV file, kept so decode errors can name the
// offending column and value.
type table struct {
	header  []string
	records [][]string
	lines   []int
}

func readTable(filePath string, data []byte, columns []string, delimiter rune) (*table, error) {
	reader := newReader(bytes.NewReader(data), delimiter)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &reporterror.ParseError{File: filePath, Err: errors.New("file is empty")}
	}
	if err != nil {
		return nil, toParseError(filePath, err)
	}

	present := make(map[string]bool, len(header))
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
		present[header[i]] = true
	}
	for _, col := range columns {
		if !present[col] {
			return nil, &reporterror.MissingColumnError{File: filePath, Column: col, Header: header}
		}
	}

	t := &table{header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, toParseError(filePath, err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) > len(header) {
			return nil, &reporterror.ParseError{
				File: filePath,
				Line: line,
				Err:  fmt.Errorf("%d fields, header has %d: %w", len(record), len(header), csv.ErrFieldCount),
			}
		}
		t.records = append(t.records, record)
		t.lines = append(t.lines, line)
	}
}

// parseError maps a gocsv decode error, which counts rows from the header and
// columns from 1, back to the file line, column name and raw value.
func (t *table) parseError(filePath string, err error) error {
	var csvErr *csv.ParseError
	if !errors.As(err, &csvErr) {
		return toParseError(filePath, err)
	}
	perr := &reporterror.ParseError{File: filePath, Line: csvErr.Line, Err: csvErr.Err}
	row, col := csvErr.Line-2, csvErr.Column-1
	if row < 0 || row >= len(t.records) {
		return perr
	}
	perr.Line = t.lines[row]
	if col >= 0 && col < len(t.records[row]) && col < len(t.header) {
		perr.Field = t.header[col]
		perr.Value = t.records[row][col]
	}
	return perr
}

func toParseError(filePath string, err error) error {
	perr := &reporterror.ParseError{File: filePath, Err: err}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		perr.Line = csvErr.Line
		perr.Err = csvErr.Err
	}
	return perr
}

// WriteCSVFile writes rows to a CSV file with gocsv, creating parent directories.
func WriteCSVFile[TRow any](rows []TRow, filePath string, delimiter rune, logger logging.Logger) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to %s", filePath)
	}
	log := logger.WithField(logging.FieldFile, filePath)

	err := fileutils.CreateWith(filePath, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		csvWriter.Comma = delimiter
		if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return &reporterror.FileError{Op: "write", Path: filePath, Err: err}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return err
	}

	log.Info("Wrote CSV file", logging.F(logging.FieldCount, len(rows)))
	return nil
}
