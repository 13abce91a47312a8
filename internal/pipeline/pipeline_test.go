package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"fjacquet/fire-report/internal/chart"
	"fjacquet/fire-report/internal/composer"
	"fjacquet/fire-report/internal/export"
	"fjacquet/fire-report/internal/interactive"
	"fjacquet/fire-report/internal/loader"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/reporterror"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct{ shown []string }

func (s *failingSink) Show(p *interactive.Page) error {
	s.shown = append(s.shown, p.Name)
	return errors.New("no display")
}

func fixtureInputs() loader.InputPaths {
	return loader.InputPaths{
		YearSeries: filepath.Join("testdata", "data2000_2024.csv"),
		Regions:    filepath.Join("testdata", "region.csv"),
		States:     filepath.Join("testdata", "nrw.csv"),
	}
}

func outputsIn(dir string) Outputs {
	return Outputs{
		BarChart:   filepath.Join(dir, "balkendiagramm.png"),
		PieChart:   filepath.Join(dir, "tortendiagramm.png"),
		TimeSeries: filepath.Join(dir, "zeitdiagramm.png"),
		Report:     filepath.Join(dir, "Bericht_Braende_Deutschland.pdf"),
	}
}

func newPipeline(inputs loader.InputPaths, outDir string, sink interactive.Sink, logger logging.Logger) *Pipeline {
	return New(
		Options{Inputs: inputs, Outputs: outputsIn(outDir)},
		loader.New(',', logger),
		chart.NewRenderer(40, logger),
		sink,
		export.New(logger),
		composer.New("Bericht über die Anzahl der Brände in deutschen Bundesländern", logger),
		logger,
	)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		info, err := e.Info()
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), e.Name())
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRun_EndToEnd(t *testing.T) {
	out := t.TempDir()
	logger := logging.NewMockLogger()

	res, err := newPipeline(fixtureInputs(), out, nil, logger).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Bericht_Braende_Deutschland.pdf",
		"balkendiagramm.png",
		"tortendiagramm.png",
		"zeitdiagramm.png",
	}, listDir(t, out))
	assert.Len(t, res.Images, 3)
	assert.Equal(t, filepath.Join(out, "Bericht_Braende_Deutschland.pdf"), res.Report)

	f, r, err := pdf.Open(res.Report)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, 3, r.NumPage())

	var stages []string
	for _, e := range logger.GetEntriesByLevel("INFO") {
		if e.Message != "Stage complete" {
			continue
		}
		for _, field := range e.Fields {
			if field.Key == logging.FieldStage {
				stages = append(stages, field.Value.(string))
			}
		}
	}
	assert.Equal(t, []string{"loaded", "cleaned", "rendered", "exported", "composed"}, stages)
}

func TestRun_TwiceOverwrites(t *testing.T) {
	out := t.TempDir()
	p := newPipeline(fixtureInputs(), out, nil, logging.NewMockLogger())

	_, err := p.Run(context.Background())
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, listDir(t, out), 4)
}

func TestRun_SinkFailureOnlyWarns(t *testing.T) {
	sink := &failingSink{}
	logger := logging.NewMockLogger()

	_, err := newPipeline(fixtureInputs(), t.TempDir(), sink, logger).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{chart.BarName, chart.PieName, chart.TimeSeriesName}, sink.shown)
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 3)
}

func TestRun_MissingInput(t *testing.T) {
	out := t.TempDir()
	inputs := fixtureInputs()
	inputs.Regions = filepath.Join("testdata", "missing.csv")

	_, err := newPipeline(inputs, out, nil, logging.NewMockLogger()).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	var fe *reporterror.FileError
	assert.True(t, errors.As(err, &fe))
	assert.Empty(t, listDir(t, out))
}

func TestRun_EmptyDatasetAfterCleaning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "years.csv")
	require.NoError(t, os.WriteFile(path, []byte("year,number\n2000,0\n2001,\n"), 0600))
	inputs := fixtureInputs()
	inputs.YearSeries = path
	out := t.TempDir()

	_, err := newPipeline(inputs, out, nil, logging.NewMockLogger()).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, reporterror.ErrEmptyDataset))
	assert.Empty(t, listDir(t, out))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := t.TempDir()

	_, err := newPipeline(fixtureInputs(), out, nil, logging.NewMockLogger()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, listDir(t, out))
}

func TestLoadClean_Stats(t *testing.T) {
	ds, stats, err := newPipeline(fixtureInputs(), t.TempDir(), nil, logging.NewMockLogger()).
		LoadClean(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Years, 3)
	assert.Len(t, ds.Regions, 5)
	assert.Len(t, ds.States, 5)
	require.Len(t, stats, 3)
	// 2001 has zero incidents, 2002 an empty count, 2005 no count column at all
	assert.Equal(t, 6, stats[0].Read)
	assert.Equal(t, 3, stats[0].Dropped())
	assert.Equal(t, 0, stats[1].Dropped())
	assert.Equal(t, 1, stats[2].Dropped())
}
