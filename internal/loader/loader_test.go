package loader

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/reporterror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadYearSeries(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data2000_2024.csv", "year,number\n2000,5\n2001,0\n2002,\n2003.0,7.5\n")

	rows, err := New(',', logging.NewMockLogger()).LoadYearSeries(path)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, models.NewYear(2000), rows[0].Year)
	assert.True(t, rows[0].Number.Value.Equal(models.NewCount(5).Value))
	assert.True(t, rows[1].Number.Valid)
	assert.False(t, rows[2].Number.Valid, "empty cell is a missing count")
	assert.Equal(t, models.NewYear(2003), rows[3].Year)
	assert.Equal(t, 7.5, rows[3].Number.Float64())
}

func TestLoadRegions_ColumnOrderAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "region.csv", "\ufeffnumber, region\n10,Nord\n20, Süd\n")

	rows, err := New(',', logging.NewMockLogger()).LoadRegions(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Nord", rows[0].Region)
	assert.Equal(t, "Süd", rows[1].Region)
	assert.Equal(t, 20.0, rows[1].Number.Float64())
}

func TestLoadStateSeries_Semicolon(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nrw.csv", "state;year;number\nNRW;2000;3\nNRW;2001;4\n")

	logger := logging.NewMockLogger()
	rows, err := New(';', logger).LoadStateSeries(path)
	require.NoError(t, err)
	debug := logger.GetEntriesByLevel("DEBUG")
	require.NotEmpty(t, debug)
	assert.Contains(t, debug[0].Fields, logging.F(logging.FieldDelimiter, ";"))
	require.Len(t, rows, 2)
	assert.Equal(t, "NRW", rows[1].State)
	assert.Equal(t, 2001, rows[1].Year.Value)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	l := New(',', logging.NewMockLogger())

	t.Run("missing file", func(t *testing.T) {
		_, err := l.LoadRegions(filepath.Join(dir, "missing.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		var fe *reporterror.FileError
		assert.True(t, errors.As(err, &fe))
	})

	t.Run("missing column", func(t *testing.T) {
		path := writeFile(t, dir, "nocol.csv", "region,count\nNord,1\n")
		_, err := l.LoadRegions(path)
		var mce *reporterror.MissingColumnError
		require.True(t, errors.As(err, &mce))
		assert.Equal(t, "number", mce.Column)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "empty.csv", "")
		_, err := l.LoadYearSeries(path)
		var pe *reporterror.ParseError
		assert.True(t, errors.As(err, &pe))
	})

	t.Run("bad value", func(t *testing.T) {
		path := writeFile(t, dir, "bad.csv", "year,number\n2000,1\n2001,viele\n")
		_, err := l.LoadYearSeries(path)
		var pe *reporterror.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 3, pe.Line)
		assert.Equal(t, "number", pe.Field)
		assert.Equal(t, "viele", pe.Value)
	})

	t.Run("bad value after blank line", func(t *testing.T) {
		path := writeFile(t, dir, "blank.csv", "number,year\n1,2000\n\n2,zweitausend\n")
		_, err := l.LoadYearSeries(path)
		var pe *reporterror.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 4, pe.Line)
		assert.Equal(t, "year", pe.Field)
		assert.Equal(t, "zweitausend", pe.Value)
	})

	t.Run("row longer than header", func(t *testing.T) {
		path := writeFile(t, dir, "ragged.csv", "year,number\n2000,1\n2001,1,9\n")
		_, err := l.LoadYearSeries(path)
		var pe *reporterror.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 3, pe.Line)
		assert.ErrorIs(t, err, csv.ErrFieldCount)
	})
}

func TestLoad_ShortRowsLeaveFieldsMissing(t *testing.T) {
	dir := t.TempDir()
	l := New(',', logging.NewMockLogger())

	years, err := l.LoadYearSeries(writeFile(t, dir, "y.csv", "year,number\n2000\n2001,4\n"))
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.True(t, years[0].Year.Valid)
	assert.False(t, years[0].Number.Valid)
	assert.False(t, years[0].Complete())
	assert.True(t, years[1].Complete())

	states, err := l.LoadStateSeries(writeFile(t, dir, "s.csv", "state,year,number\nNRW\nNRW,2001,4\n"))
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.False(t, states[0].Year.Valid)
	assert.False(t, states[0].Complete())
}

func TestLoadAll_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	paths := InputPaths{
		YearSeries: writeFile(t, dir, "y.csv", "year,number\n2000,1\n"),
		Regions:    filepath.Join(dir, "absent.csv"),
		States:     writeFile(t, dir, "s.csv", "state,year,number\nNRW,2000,1\n"),
	}

	ds, err := New(',', logging.NewMockLogger()).LoadAll(paths)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Empty(t, ds.Years)

	paths.Regions = writeFile(t, dir, "r.csv", "region,number\nNord,1\n")
	ds, err = New(',', logging.NewMockLogger()).LoadAll(paths)
	require.NoError(t, err)
	assert.Len(t, ds.Years, 1)
	assert.Len(t, ds.Regions, 1)
	assert.Len(t, ds.States, 1)
}

func TestWriteCSVFile_RoundTripsCleanedRows(t *testing.T) {
	dir := t.TempDir()
	rows := []models.StateCount{
		{State: "NRW", Year: models.NewYear(2000), Number: models.NewCount(3)},
		{State: "NRW", Year: models.NewYear(2001), Number: models.NewCountFromFloat(4.5)},
	}
	path := filepath.Join(dir, "out", "nrw.csv")
	logger := logging.NewMockLogger()

	require.NoError(t, WriteCSVFile(rows, path, ',', logger))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "state,year,number\nNRW,2000,3\nNRW,2001,4.5\n", string(content))

	back, err := New(',', logger).LoadStateSeries(path)
	require.NoError(t, err)
	assert.Len(t, back, 2)

	assert.Error(t, WriteCSVFile[models.StateCount](nil, path, ',', logger))
}
