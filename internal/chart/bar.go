package chart

import (
	"io"
	"math"

	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/palette"
	"fjacquet/fire-report/internal/reporterror"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var barSize = struct{ w, h vg.Length }{10 * vg.Inch, 6 * vg.Inch}

// BarChart shows incidents per year as vertical bars.
type BarChart struct {
	labels []string
	values []float64
	dpi    int
	plot   *plot.Plot
}

// Bar builds the bar chart: one bar per row, the year as category label.
func (r *Renderer) Bar(rows []models.YearCount) (*BarChart, error) {
	if len(rows) == 0 {
		return nil, &reporterror.RenderError{Chart: BarName, Err: reporterror.ErrEmptyDataset}
	}

	c := &BarChart{
		labels: make([]string, len(rows)),
		values: make([]float64, len(rows)),
		dpi:    r.dpi,
	}
	for i, row := range rows {
		c.labels[i] = row.Year.Label()
		c.values[i] = row.Number.Float64()
	}

	p := plot.New()
	p.Title.Text = BarTitle
	p.X.Label.Text = labelYear
	p.Y.Label.Text = labelCases
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(plotter.Values(c.values), barWidth(len(rows)))
	if err != nil {
		return nil, &reporterror.RenderError{Chart: BarName, Err: err}
	}
	bars.Color = palette.SkyBlue
	bars.LineStyle.Width = 0
	p.Add(bars)

	p.NominalX(c.labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	c.plot = p
	r.logger.Debug("Built bar chart",
		logging.F(logging.FieldChart, BarName),
		logging.F(logging.FieldCount, len(rows)))
	return c, nil
}

// barWidth spreads the bars over the plot area, leaving a gap between them.
func barWidth(n int) vg.Length {
	w := (barSize.w - vg.Inch) / vg.Length(n) * 0.8
	if limit := vg.Points(40); w > limit {
		return limit
	}
	return w
}

// Name implements Static.
func (c *BarChart) Name() string { return BarName }

// Title implements Static.
func (c *BarChart) Title() string { return BarTitle }

// Size implements Static.
func (c *BarChart) Size() (vg.Length, vg.Length) { return barSize.w, barSize.h }

// Labels returns the x-axis categories in order.
func (c *BarChart) Labels() []string { return c.labels }

// Values returns the bar heights in order.
func (c *BarChart) Values() []float64 { return c.values }

// Plot exposes the configured plot for inspection in tests. Output goes
// through WriteTo.
func (c *BarChart) Plot() *plot.Plot { return c.plot }

// WriteTo implements Static.
func (c *BarChart) WriteTo(w io.Writer) (int64, error) {
	n, err := writePlotPNG(c.plot, barSize.w, barSize.h, c.dpi, w)
	if err != nil {
		return n, &reporterror.RenderError{Chart: BarName, Err: err}
	}
	return n, nil
}
