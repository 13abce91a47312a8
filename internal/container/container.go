// Package container provides dependency injection for the fire-report
// application. It centralizes the creation and wiring of all components,
// making them explicit and testable.
package container

import (
	"fmt"
	"path/filepath"

	"fjacquet/fire-report/internal/chart"
	"fjacquet/fire-report/internal/composer"
	"fjacquet/fire-report/internal/config"
	"fjacquet/fire-report/internal/export"
	"fjacquet/fire-report/internal/interactive"
	"fjacquet/fire-report/internal/loader"
	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/pipeline"
)

// Container holds all application dependencies.
//
// Container is immutable after creation. All fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	loader   *loader.Loader
	renderer *chart.Renderer
	sink     interactive.Sink
	exporter *export.Exporter
	composer *composer.Composer
	pipeline *pipeline.Pipeline
}

// Option overrides a component before the pipeline is wired.
type Option func(*Container)

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// WithSink replaces the interactive sink selected by interactive.mode.
func WithSink(sink interactive.Sink) Option {
	return func(c *Container) { c.sink = sink }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	// Logger first, every component takes it.
	if c.logger == nil {
		c.logger = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	}

	if c.sink == nil {
		sink, err := interactive.NewSink(cfg.Interactive.Mode, cfg.OutputPath(cfg.Interactive.Dir), c.logger)
		if err != nil {
			return nil, err
		}
		c.sink = sink
	}

	c.loader = loader.New(cfg.Delimiter(), c.logger)
	c.renderer = chart.NewRenderer(cfg.Chart.DPI, c.logger)
	c.exporter = export.New(c.logger)
	c.composer = composer.New(cfg.Report.Title, c.logger)
	c.pipeline = pipeline.New(pipelineOptions(cfg),
		c.loader, c.renderer, c.sink, c.exporter, c.composer, c.logger)

	c.logger.Debug("Container initialized successfully",
		logging.F(logging.FieldSink, cfg.Interactive.Mode),
		logging.F("dpi", c.renderer.DPI()))

	return c, nil
}

func pipelineOptions(cfg *config.Config) pipeline.Options {
	return pipeline.Options{
		Inputs: loader.InputPaths{
			YearSeries: cfg.InputPath(cfg.Input.YearSeries),
			Regions:    cfg.InputPath(cfg.Input.Regions),
			States:     cfg.InputPath(cfg.Input.States),
		},
		Outputs: pipeline.Outputs{
			BarChart:   cfg.OutputPath(cfg.Output.BarChart),
			PieChart:   cfg.OutputPath(cfg.Output.PieChart),
			TimeSeries: cfg.OutputPath(cfg.Output.TimeSeries),
			Report:     cfg.OutputPath(cfg.Output.Report),
		},
	}
}

// CleanPath returns where the clean command writes for the configured
// format: a directory for CSV, a workbook file for XLSX.
func (c *Container) CleanPath() string {
	dir := c.config.OutputPath(c.config.Clean.Dir)
	if c.config.Clean.Format == config.CleanFormatXLSX {
		return filepath.Clean(dir) + ".xlsx"
	}
	return dir
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLoader returns the dataset loader.
func (c *Container) GetLoader() *loader.Loader {
	return c.loader
}

// GetRenderer returns the static chart renderer.
func (c *Container) GetRenderer() *chart.Renderer {
	return c.renderer
}

// GetSink returns the interactive sink.
func (c *Container) GetSink() interactive.Sink {
	return c.sink
}

// GetExporter returns the PNG exporter.
func (c *Container) GetExporter() *export.Exporter {
	return c.exporter
}

// GetComposer returns the PDF composer.
func (c *Container) GetComposer() *composer.Composer {
	return c.composer
}

// GetPipeline returns the wired report pipeline.
func (c *Container) GetPipeline() *pipeline.Pipeline {
	return c.pipeline
}
