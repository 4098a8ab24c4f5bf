// Package shadow converts pixel grids into CSS box-shadow data.
package shadow

import (
	"math"
	"strings"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

// Options holds the grid geometry used to place shadows.
type Options struct {
	// Columns is the number of pixels per grid row.
	Columns int
	// PixelSize is the edge length of one pixel in CSS pixels.
	PixelSize float64
	// BlurRadius is the blur radius in CSS pixels. Zero renders as 0.
	BlurRadius float64
	// SpreadRadius is the spread radius in CSS pixels. Zero renders as 0.
	SpreadRadius float64
	// Format selects the output shape. Anything but FormatArray yields a string.
	Format models.Format
}

// Offset returns the shadow offset of the i-th grid cell.
// Offsets start at one pixel so the first cell never sits on the element origin.
func (o Options) Offset(i int) (x, y float64) {
	c := float64(o.Columns)
	x = math.Mod(float64(i), c)*o.PixelSize + o.PixelSize
	y = math.Trunc(float64(i)/c)*o.PixelSize + o.PixelSize
	return x, y
}

// Build returns the shadow data of grid in the format requested by opts.
func Build(grid models.Grid, opts Options) models.ShadowData {
	if opts.Format == models.FormatArray {
		return models.ShadowData{Format: models.FormatArray, Entries: Entries(grid, opts)}
	}
	return models.ShadowData{Format: models.FormatString, Text: String(grid, opts)}
}

// Entries returns one ShadowEntry per painted cell, in grid order.
// Cells holding an empty color are skipped.
func Entries(grid models.Grid, opts Options) []models.ShadowEntry {
	blur := models.Radius(opts.BlurRadius)
	spread := models.Radius(opts.SpreadRadius)

	entries := make([]models.ShadowEntry, 0, len(grid))
	for i, color := range grid {
		if color == "" {
			continue
		}
		x, y := opts.Offset(i)
		entries = append(entries, models.ShadowEntry{
			X:            x,
			Y:            y,
			Color:        color,
			BlurRadius:   blur,
			SpreadRadius: spread,
		})
	}
	return entries
}

// String returns the comma separated box-shadow value of grid,
// e.g. "10px 10px 0 0 #8bc34a, 20px 10px 0 0 #673ab7".
// A grid without painted cells yields an empty string.
func String(grid models.Grid, opts Options) string {
	var b strings.Builder
	for i, e := range Entries(grid, opts) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	return b.String()
}

// Class returns a CSS class rule drawing grid as a single box-shadow image.
func Class(grid models.Grid, opts Options, className string) string {
	size := models.FormatNumber(opts.PixelSize)
	return "." + className + " {\n  box-shadow: " + Build(grid, opts).String() +
		";\n  height: " + size + "px;\n  width: " + size + "px;\n}"
}
