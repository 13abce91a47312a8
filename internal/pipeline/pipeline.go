// Package pipeline runs the report stages in order: load, clean, render,
// export and compose.
package pipeline

import (
	"context"
	"time"

	"fjacquet/fire-report/internal/chart"
	"fjacquet/fire-report/internal/cleaner"
	"fjacquet/fire-report/internal/composer"
	"fjacquet/fire-report/internal/export"
	"fjacquet/fire-report/internal/interactive"
	"fjacquet/fire-report/internal/loader"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
)

// Stage names a completed step of a run.
type Stage string

const (
	StageLoaded   Stage = "loaded"
	StageCleaned  Stage = "cleaned"
	StageRendered Stage = "rendered"
	StageExported Stage = "exported"
	StageComposed Stage = "composed"
)

// Outputs are the files produced by a run.
type Outputs struct {
	BarChart   string
	PieChart   string
	TimeSeries string
	Report     string
}

// Options fixes the inputs and outputs of a run.
type Options struct {
	Inputs  loader.InputPaths
	Outputs Outputs
}

// Result lists the files written by a successful run.
type Result struct {
	Images []string
	Report string
}

// Pipeline holds the components of one report run.
type Pipeline struct {
	opts     Options
	loader   *loader.Loader
	renderer *chart.Renderer
	sink     interactive.Sink
	exporter *export.Exporter
	composer *composer.Composer
	logger   logging.Logger
}

// New creates a Pipeline. A nil sink disables interactive pages.
func New(opts Options, l *loader.Loader, r *chart.Renderer, sink interactive.Sink,
	e *export.Exporter, c *composer.Composer, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if sink == nil {
		sink = interactive.NopSink{}
	}
	return &Pipeline{
		opts:     opts,
		loader:   l,
		renderer: r,
		sink:     sink,
		exporter: e,
		composer: c,
		logger:   logger,
	}
}

// LoadClean reads and cleans the three datasets.
func (p *Pipeline) LoadClean(ctx context.Context) (models.Datasets, []cleaner.Stats, error) {
	start := time.Now()
	raw, err := p.loader.LoadAll(p.opts.Inputs)
	if err != nil {
		return models.Datasets{}, nil, err
	}
	p.stageDone(StageLoaded, start,
		logging.F(logging.FieldCount, len(raw.Years)+len(raw.Regions)+len(raw.States)))

	if err := ctx.Err(); err != nil {
		return models.Datasets{}, nil, err
	}

	start = time.Now()
	ds, stats, err := cleaner.CleanAll(raw)
	for _, s := range stats {
		p.logger.Debug("Cleaned dataset",
			logging.F(logging.FieldDataset, s.Dataset),
			logging.F(logging.FieldCount, s.Kept),
			logging.F(logging.FieldDropped, s.Dropped()))
	}
	if err != nil {
		return models.Datasets{}, stats, err
	}
	p.stageDone(StageCleaned, start,
		logging.F(logging.FieldCount, len(ds.Years)+len(ds.Regions)+len(ds.States)))
	return ds, stats, nil
}

// Run executes every stage once. The first failing stage aborts the run;
// files written before it are left in place.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	ds, _, err := p.LoadClean(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	charts, err := p.render(ds)
	if err != nil {
		return nil, err
	}
	p.stageDone(StageRendered, start, logging.F(logging.FieldCount, len(charts)))
	p.showInteractive(ds)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	jobs := []export.Job{
		{Chart: charts[0], Path: p.opts.Outputs.BarChart},
		{Chart: charts[1], Path: p.opts.Outputs.PieChart},
		{Chart: charts[2], Path: p.opts.Outputs.TimeSeries},
	}
	images, err := p.exporter.Export(jobs...)
	if err != nil {
		return nil, err
	}
	p.stageDone(StageExported, start, logging.F(logging.FieldCount, len(images)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	sections := make([]composer.Section, len(jobs))
	for i, job := range jobs {
		sections[i] = composer.Section{Caption: job.Chart.Title(), ImagePath: job.Path}
	}
	if err := p.composer.Compose(sections, p.opts.Outputs.Report); err != nil {
		return nil, err
	}
	p.stageDone(StageComposed, start, logging.F(logging.FieldFile, p.opts.Outputs.Report))

	return &Result{Images: images, Report: p.opts.Outputs.Report}, nil
}

// render builds the bar, pie and time-series charts in report order.
func (p *Pipeline) render(ds models.Datasets) ([]chart.Static, error) {
	bar, err := p.renderer.Bar(ds.Years)
	if err != nil {
		return nil, err
	}
	pie, err := p.renderer.Pie(ds.Regions)
	if err != nil {
		return nil, err
	}
	ts, err := p.renderer.TimeSeries(ds.States)
	if err != nil {
		return nil, err
	}
	return []chart.Static{bar, pie, ts}, nil
}

// showInteractive hands the interactive pages to the sink. A failing sink
// does not fail the run.
func (p *Pipeline) showInteractive(ds models.Datasets) {
	pages := []*interactive.Page{
		interactive.BarPage(ds.Years),
		interactive.PiePage(ds.Regions),
		interactive.TimeSeriesPage(ds.States),
	}
	for _, page := range pages {
		if err := p.sink.Show(page); err != nil {
			p.logger.WithError(err).Warn("Failed to show interactive chart",
				logging.F(logging.FieldChart, page.Name))
		}
	}
}

func (p *Pipeline) stageDone(stage Stage, start time.Time, fields ...logging.Field) {
	fields = append(fields,
		logging.F(logging.FieldStage, string(stage)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	p.logger.Info("Stage complete", fields...)
}
