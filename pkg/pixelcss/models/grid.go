// Package models defines data structures for pixel grids, box-shadow entries and keyframes.
package models

import (
	"encoding/json"
	"strconv"
)

// Grid is a row-major list of pixel colors. An empty string marks a
// transparent pixel.
type Grid []string

// Radius is a resolved blur or spread radius.
// The zero value renders as a bare 0, anything else as "{v}px".
type Radius float64

// String returns the CSS form of the radius.
func (r Radius) String() string {
	if r == 0 {
		return "0"
	}
	return FormatNumber(float64(r)) + "px"
}

// MarshalJSON encodes a zero radius as the number 0 and any other radius
// as a "{v}px" string.
func (r Radius) MarshalJSON() ([]byte, error) {
	if r == 0 {
		return []byte("0"), nil
	}
	return json.Marshal(r.String())
}

// ShadowEntry represents a single box-shadow term drawing one pixel.
type ShadowEntry struct {
	// X is the horizontal offset in pixels (first column at PixelSize).
	X float64 `json:"x"`
	// Y is the vertical offset in pixels (first row at PixelSize).
	Y float64 `json:"y"`
	// Color is the pixel color token as supplied in the grid.
	Color string `json:"color"`
	// BlurRadius is the resolved blur radius.
	BlurRadius Radius `json:"blurRadius"`
	// SpreadRadius is the resolved spread radius.
	SpreadRadius Radius `json:"spreadRadius"`
}

// String renders the entry as a box-shadow term, e.g. "10px 20px 0 0 #fff".
func (e ShadowEntry) String() string {
	return FormatNumber(e.X) + "px " + FormatNumber(e.Y) + "px " +
		e.BlurRadius.String() + " " + e.SpreadRadius.String() + " " + e.Color
}

// FormatNumber renders a number the way it appears in generated CSS:
// the shortest decimal that round-trips, without exponent or trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
