// Package chart builds the static charts of the fire report. Each chart is an
// explicit object holding its fully configured plot, ready to be written as
// PNG without being rebuilt.
package chart

import (
	"io"

	"fjacquet/fire-report/internal/logging"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Chart titles and axis labels.
const (
	BarTitle        = "Anzahl der Brände in deutschen Bundesländern von 2000 bis 2024"
	PieTitle        = "Anzahl der Brände in den deutschen Bundesländern von 2000 bis 2024"
	TimeSeriesTitle = "Brände in deutschen Bundesländern von 2000 bis 2024"

	labelYear  = "Jahr"
	labelCases = "Anzahl der Fälle"
	labelDate  = "Datum"
)

// Export base names.
const (
	BarName        = "balkendiagramm"
	PieName        = "tortendiagramm"
	TimeSeriesName = "zeitdiagramm"
)

// DefaultDPI gives the 1000×600, 800×800 and 1200×800 pixel images of the report.
const DefaultDPI = 100

// Static is a rendered chart that can be written to a PNG image.
type Static interface {
	// Name is the export base name of the chart.
	Name() string
	// Title is the chart heading, reused as the report caption.
	Title() string
	// Size is the declared figure size.
	Size() (w, h vg.Length)
	// WriteTo writes the chart as PNG.
	WriteTo(w io.Writer) (int64, error)
}

// Renderer builds the static charts at a fixed resolution.
type Renderer struct {
	dpi    int
	logger logging.Logger
}

// NewRenderer creates a Renderer. A non-positive dpi means DefaultDPI.
func NewRenderer(dpi int, logger logging.Logger) *Renderer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Renderer{dpi: dpi, logger: logger}
}

// DPI returns the resolution used for PNG output.
func (r *Renderer) DPI() int {
	return r.dpi
}

// writePlotPNG draws p on a fresh canvas of the given size and writes it as PNG.
func writePlotPNG(p *plot.Plot, width, height vg.Length, dpi int, w io.Writer) (int64, error) {
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	return vgimg.PngCanvas{Canvas: c}.WriteTo(w)
}
