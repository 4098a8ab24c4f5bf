package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FrameSource is one animation frame: a grid plus the percentage at which
// the frame stops being displayed.
type FrameSource interface {
	FrameGrid() (Grid, error)
	FrameInterval() (float64, error)
}

// Frame is a plain frame record.
type Frame struct {
	// Grid holds the frame pixels. A nil grid means the frame has none.
	Grid Grid `json:"grid" yaml:"grid"`
	// Interval is the percentage (0-100) where this frame ends.
	Interval float64 `json:"interval" yaml:"interval"`
}

// FrameGrid returns the frame grid or ErrMissingGrid when it is nil.
func (f Frame) FrameGrid() (Grid, error) {
	if f.Grid == nil {
		return nil, ErrMissingGrid
	}
	return f.Grid, nil
}

// FrameInterval returns the frame interval.
func (f Frame) FrameInterval() (float64, error) {
	return f.Interval, nil
}

// Getter is implemented by frame values exposing fields through a keyed accessor.
type Getter interface {
	Get(key string) (any, bool)
}

// AccessorFrame adapts a Getter into a FrameSource by reading
// the "grid" and "interval" keys.
type AccessorFrame struct {
	Getter
}

// FrameGrid reads the "grid" key.
func (f AccessorFrame) FrameGrid() (Grid, error) {
	if f.Getter == nil {
		return nil, ErrMissingGrid
	}
	v, ok := f.Get("grid")
	if !ok || v == nil {
		return nil, ErrMissingGrid
	}
	return toGrid(v)
}

// FrameInterval reads the "interval" key. A missing or empty value is 0.
func (f AccessorFrame) FrameInterval() (float64, error) {
	if f.Getter == nil {
		return 0, nil
	}
	v, ok := f.Get("interval")
	if !ok || v == nil {
		return 0, nil
	}
	return toInterval(v)
}

// MapFrame is a frame decoded from a generic document (YAML or JSON).
type MapFrame map[string]any

// Get implements Getter.
func (m MapFrame) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// FrameGrid implements FrameSource.
func (m MapFrame) FrameGrid() (Grid, error) {
	return AccessorFrame{m}.FrameGrid()
}

// FrameInterval implements FrameSource.
func (m MapFrame) FrameInterval() (float64, error) {
	return AccessorFrame{m}.FrameInterval()
}

func toGrid(v any) (Grid, error) {
	switch g := v.(type) {
	case Grid:
		return g, nil
	case []string:
		return Grid(g), nil
	case []any:
		grid := make(Grid, len(g))
		for i, c := range g {
			switch c := c.(type) {
			case string:
				grid[i] = c
			case nil:
				grid[i] = ""
			default:
				return nil, fmt.Errorf("%w: cell %d has type %T", ErrMissingGrid, i, c)
			}
		}
		return grid, nil
	default:
		return nil, fmt.Errorf("%w: unsupported grid type %T", ErrMissingGrid, v)
	}
}

func toInterval(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case json.Number:
		return ParseFloat(n.String())
	case string:
		if n == "" {
			return 0, nil
		}
		return ParseFloat(n)
	default:
		return 0, fmt.Errorf("%w: unsupported interval type %T", ErrMissingInterval, v)
	}
}

var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseFloat reads the longest leading decimal number of s, ignoring
// leading whitespace and any trailing text ("25%" is 25).
func ParseFloat(s string) (float64, error) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMissingInterval, s)
	}
	m = strings.Replace(m, "Infinity", "Inf", 1)
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %v", ErrMissingInterval, err)
	}
	return f, nil
}
