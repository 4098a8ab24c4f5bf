// Package output serializes generated shadow data and keyframes.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

// ToJSON serializes v to JSON, indented with two spaces when pretty is set.
// HTML characters are not escaped so colors and selectors stay readable.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ShadowToJSON serializes shadow data: a JSON string for string format,
// an array of entries for array format.
func ShadowToJSON(data models.ShadowData, pretty bool) ([]byte, error) {
	return ToJSON(data, pretty)
}

// KeyframesToJSON serializes a keyframe map as an ordered JSON object.
func KeyframesToJSON(km *models.KeyframeMap, pretty bool) ([]byte, error) {
	if km == nil {
		km = models.NewKeyframeMap()
	}
	return ToJSON(km, pretty)
}
