package chart

import (
	"io"
	"sort"
	"time"

	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/palette"
	"fjacquet/fire-report/internal/reporterror"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var timeSeriesSize = struct{ w, h vg.Length }{12 * vg.Inch, 8 * vg.Inch}

// Point is one observation of a series.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is the line of one state.
type Series struct {
	Name   string
	Points []Point
}

// GroupByState splits rows into one series per state, in order of first
// appearance. Points of a series are sorted by date; rows sharing a date keep
// their input order.
func GroupByState(rows []models.StateCount) []Series {
	index := make(map[string]int)
	var series []Series
	for _, row := range rows {
		name := row.Label()
		i, ok := index[name]
		if !ok {
			i = len(series)
			index[name] = i
			series = append(series, Series{Name: name})
		}
		series[i].Points = append(series[i].Points, Point{Date: row.Year.Date(), Value: row.Number.Float64()})
	}
	for _, s := range series {
		pts := s.Points
		sort.SliceStable(pts, func(a, b int) bool { return pts[a].Date.Before(pts[b].Date) })
	}
	return series
}

// TimeSeriesChart shows incidents over time, one line per state.
type TimeSeriesChart struct {
	series []Series
	dpi    int
	plot   *plot.Plot
}

// TimeSeries builds the time series chart.
func (r *Renderer) TimeSeries(rows []models.StateCount) (*TimeSeriesChart, error) {
	if len(rows) == 0 {
		return nil, &reporterror.RenderError{Chart: TimeSeriesName, Err: reporterror.ErrEmptyDataset}
	}

	c := &TimeSeriesChart{series: GroupByState(rows), dpi: r.dpi}

	p := plot.New()
	p.Title.Text = TimeSeriesTitle
	p.X.Label.Text = labelDate
	p.Y.Label.Text = labelCases
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006"}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	colors := palette.Colors(len(c.series))
	for i, s := range c.series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X = float64(pt.Date.Unix())
			xys[j].Y = pt.Value
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, &reporterror.RenderError{Chart: TimeSeriesName, Err: err}
		}
		line.Color = colors[i]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	c.plot = p
	r.logger.Debug("Built time series chart",
		logging.F(logging.FieldChart, TimeSeriesName),
		logging.F(logging.FieldCount, len(c.series)))
	return c, nil
}

// Name implements Static.
func (c *TimeSeriesChart) Name() string { return TimeSeriesName }

// Title implements Static.
func (c *TimeSeriesChart) Title() string { return TimeSeriesTitle }

// Size implements Static.
func (c *TimeSeriesChart) Size() (vg.Length, vg.Length) {
	return timeSeriesSize.w, timeSeriesSize.h
}

// Series returns the plotted series.
func (c *TimeSeriesChart) Series() []Series { return c.series }

// Legend returns the legend entries in display order.
func (c *TimeSeriesChart) Legend() []string {
	names := make([]string, len(c.series))
	for i, s := range c.series {
		names[i] = s.Name
	}
	return names
}

// Plot exposes the configured plot for inspection in tests. Output goes
// through WriteTo.
func (c *TimeSeriesChart) Plot() *plot.Plot { return c.plot }

// WriteTo implements Static.
func (c *TimeSeriesChart) WriteTo(w io.Writer) (int64, error) {
	n, err := writePlotPNG(c.plot, timeSeriesSize.w, timeSeriesSize.h, c.dpi, w)
	if err != nil {
		return n, &reporterror.RenderError{Chart: TimeSeriesName, Err: err}
	}
	return n, nil
}
