// Package palette provides the colours shared by static and interactive charts.
package palette

import (
	"fmt"
	"image/color"
)

// Base is the five-colour palette of the report: light red, blue, green,
// orange and lavender.
var Base = []color.RGBA{
	{R: 0xff, G: 0x99, B: 0x99, A: 0xff},
	{R: 0x66, G: 0xb3, B: 0xff, A: 0xff},
	{R: 0x99, G: 0xff, B: 0x99, A: 0xff},
	{R: 0xff, G: 0xcc, B: 0x99, A: 0xff},
	{R: 0xc2, G: 0xc2, B: 0xf0, A: 0xff},
}

// SkyBlue is the bar colour.
var SkyBlue = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

// Colors returns n colours, cycling through Base.
func Colors(n int) []color.RGBA {
	if n <= 0 {
		return []color.RGBA{}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = Base[i%len(Base)]
	}
	return out
}

// Hex formats a colour as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
