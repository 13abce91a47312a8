// Package export writes static charts to PNG files.
package export

import (
	"io"
	"time"

	"fjacquet/fire-report/internal/chart"
	"fjacquet/fire-report/internal/fileutils"
	"fjacquet/fire-report/internal/logging"
)

// Job pairs a chart with its target file.
type Job struct {
	Chart chart.Static
	Path  string
}

// Exporter writes charts to disk, one file at a time.
type Exporter struct {
	logger logging.Logger
}

// New creates an Exporter.
func New(logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{logger: logger}
}

// Export writes every job in order and returns the written paths. Existing
// files are overwritten. The first failure stops the export; files written
// before it stay on disk.
func (e *Exporter) Export(jobs ...Job) ([]string, error) {
	paths := make([]string, 0, len(jobs))
	for _, job := range jobs {
		start := time.Now()
		if err := writeChart(job); err != nil {
			e.logger.WithError(err).Error("Failed to export chart",
				logging.F(logging.FieldChart, job.Chart.Name()),
				logging.F(logging.FieldFile, job.Path))
			return paths, err
		}
		e.logger.Info("Exported chart",
			logging.F(logging.FieldChart, job.Chart.Name()),
			logging.F(logging.FieldFile, job.Path),
			logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
		paths = append(paths, job.Path)
	}
	return paths, nil
}

// writeChart closes the file before returning so the next chart starts with
// the previous image flushed.
func writeChart(job Job) error {
	return fileutils.CreateWith(job.Path, func(w io.Writer) error {
		_, err := job.Chart.WriteTo(w)
		return err
	})
}
