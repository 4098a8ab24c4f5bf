package models

import (
	"encoding/json"
	"strings"
)

// Format selects the shape of generated shadow data.
type Format string

const (
	// FormatString produces a single comma separated box-shadow value.
	FormatString Format = "string"
	// FormatArray produces one ShadowEntry per painted pixel.
	FormatArray Format = "array"
)

// ShadowData holds the result of a shadow build in one of the two formats.
type ShadowData struct {
	// Format is the format that was produced.
	Format Format `json:"format"`
	// Text is the box-shadow value (string format only).
	Text string `json:"text,omitempty"`
	// Entries are the per-pixel entries (array format only).
	Entries []ShadowEntry `json:"entries,omitempty"`
}

// String returns Text for string format data.
// For array data the entries are rendered and joined the same way.
func (d ShadowData) String() string {
	if d.Format != FormatArray {
		return d.Text
	}
	terms := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		terms[i] = e.String()
	}
	return strings.Join(terms, ", ")
}

// MarshalJSON encodes the active form only: a JSON string or a JSON array.
func (d ShadowData) MarshalJSON() ([]byte, error) {
	if d.Format == FormatArray {
		if d.Entries == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(d.Entries)
	}
	return json.Marshal(d.Text)
}
