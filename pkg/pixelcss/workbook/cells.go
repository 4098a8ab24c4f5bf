package workbook

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/xuri/excelize/v2"
)

// solidPattern is the excelize pattern index of a solid fill.
const solidPattern = 1

// pixels holds the painted cells of one sheet keyed by 1-based (row, col).
type pixels struct {
	cells  map[[2]int]string
	bounds Area
}

func (p *pixels) painted() bool {
	return len(p.cells) > 0
}

// grid returns the colors of area in row-major order.
func (p *pixels) grid(area Area) []string {
	out := make([]string, 0, area.Rows()*area.Columns())
	for r := area.R1; r <= area.R2; r++ {
		for c := area.C1; c <= area.C2; c++ {
			out = append(out, p.cells[[2]int{r, c}])
		}
	}
	return out
}

// cellReader resolves pixel colors of cells, caching fill colors per style.
type cellReader struct {
	f      *excelize.File
	styles map[int]string
}

func newCellReader(f *excelize.File) *cellReader {
	return &cellReader{f: f, styles: make(map[int]string)}
}

// readArea collects painted cells of sheet within area.
// A cell is painted when its value is a "#hex" color or it has a solid fill.
func (cr *cellReader) readArea(sheet string, area Area) (*pixels, error) {
	p := &pixels{cells: make(map[[2]int]string)}
	first := true

	for r := area.R1; r <= area.R2; r++ {
		for c := area.C1; c <= area.C2; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, NewSheetError(sheet, "", err)
			}
			color, err := cr.color(sheet, cell)
			if err != nil {
				return nil, NewSheetError(sheet, cell, err)
			}
			if color == "" {
				continue
			}
			p.cells[[2]int{r, c}] = color

			cellArea := Area{R1: r, C1: c, R2: r, C2: c}
			if first {
				p.bounds = cellArea
				first = false
			} else {
				p.bounds = p.bounds.Union(cellArea)
			}
		}
	}

	return p, nil
}

// color returns the normalized pixel color of a cell, or "" for a transparent cell.
func (cr *cellReader) color(sheet, cell string) (string, error) {
	value, err := cr.f.GetCellValue(sheet, cell)
	if err != nil {
		return "", err
	}
	if value = strings.TrimSpace(value); strings.HasPrefix(value, "#") {
		return normalizeColor(value)
	}

	styleID, err := cr.f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", err
	}
	if color, ok := cr.styles[styleID]; ok {
		return color, nil
	}

	color := ""
	style, err := cr.f.GetStyle(styleID)
	if err == nil && style.Fill.Type == "pattern" && style.Fill.Pattern == solidPattern &&
		len(style.Fill.Color) > 0 && style.Fill.Color[0] != "" {
		if color, err = normalizeColor(style.Fill.Color[0]); err != nil {
			return "", err
		}
	}
	cr.styles[styleID] = color
	return color, nil
}

// normalizeColor converts "#RGB", "RRGGBB", "#RRGGBB" or "AARRGGBB" into lower-case "#rrggbb".
func normalizeColor(s string) (string, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 8 {
		hex = hex[2:]
	}
	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return "", fmt.Errorf("invalid pixel color %q: %w", s, err)
	}
	return c.Hex(), nil
}
