package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"fjacquet/fire-report/internal/logging"
	"fjacquet/fire-report/internal/models"
	"fjacquet/fire-report/internal/palette"
	"fjacquet/fire-report/internal/reporterror"

	"github.com/shopspring/decimal"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/vg"
)

var (
	pieSize = 8 * vg.Inch
	hundred = decimal.NewFromInt(100)
)

// Slice is one region of the pie chart.
type Slice struct {
	Label   string
	Count   decimal.Decimal
	Percent decimal.Decimal
	Color   color.RGBA
}

// Caption returns the slice label with its share to one decimal.
func (s Slice) Caption() string {
	return fmt.Sprintf("%s (%s%%)", s.Label, s.Percent.StringFixed(1))
}

// PieChart shows the share of incidents per region.
type PieChart struct {
	slices []Slice
	chart  gochart.PieChart
}

// Pie builds the pie chart: one slice per row, coloured with palette.Colors.
func (r *Renderer) Pie(rows []models.RegionCount) (*PieChart, error) {
	if len(rows) == 0 {
		return nil, &reporterror.RenderError{Chart: PieName, Err: reporterror.ErrEmptyDataset}
	}

	total := decimal.Zero
	for _, row := range rows {
		if !row.Number.IsPositive() {
			return nil, &reporterror.RenderError{
				Chart: PieName,
				Err:   fmt.Errorf("region '%s' has non-positive count %s", row.Region, row.Number),
			}
		}
		total = total.Add(row.Number.Value)
	}

	colors := palette.Colors(len(rows))
	c := &PieChart{slices: make([]Slice, len(rows))}
	values := make([]gochart.Value, len(rows))
	for i, row := range rows {
		s := Slice{
			Label:   strings.TrimSpace(row.Region),
			Count:   row.Number.Value,
			Percent: row.Number.Value.Div(total).Mul(hundred),
			Color:   colors[i],
		}
		c.slices[i] = s
		values[i] = gochart.Value{
			Value: row.Number.Float64(),
			Label: s.Caption(),
			Style: gochart.Style{
				FillColor:   drawing.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A},
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 1,
			},
		}
	}

	px := int(float64(pieSize/vg.Inch) * float64(r.dpi))
	c.chart = gochart.PieChart{
		Title:  PieTitle,
		Width:  px,
		Height: px,
		DPI:    float64(r.dpi),
		Values: values,
	}

	r.logger.Debug("Built pie chart",
		logging.F(logging.FieldChart, PieName),
		logging.F(logging.FieldCount, len(rows)))
	return c, nil
}

// Name implements Static.
func (c *PieChart) Name() string { return PieName }

// Title implements Static.
func (c *PieChart) Title() string { return PieTitle }

// Size implements Static.
func (c *PieChart) Size() (vg.Length, vg.Length) { return pieSize, pieSize }

// Slices returns the slices in input order. Used by tests to check labels
// and colors; output goes through WriteTo.
func (c *PieChart) Slices() []Slice { return c.slices }

// Percentages returns the share of every slice in percent.
func (c *PieChart) Percentages() []float64 {
	out := make([]float64, len(c.slices))
	for i, s := range c.slices {
		out[i] = s.Percent.InexactFloat64()
	}
	return out
}

// WriteTo implements Static.
func (c *PieChart) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := c.chart.Render(gochart.PNG, &buf); err != nil {
		return 0, &reporterror.RenderError{Chart: PieName, Err: err}
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return n, &reporterror.RenderError{Chart: PieName, Err: fmt.Errorf("write png: %w", err)}
	}
	return n, nil
}
