package workbook

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area is a rectangular cell range, 1-based and inclusive.
type Area struct {
	R1, C1 int
	R2, C2 int
}

// Rows returns the number of rows covered by the area.
func (a Area) Rows() int {
	return a.R2 - a.R1 + 1
}

// Columns returns the number of columns covered by the area.
func (a Area) Columns() int {
	return a.C2 - a.C1 + 1
}

// Union returns the smallest area covering both a and b.
func (a Area) Union(b Area) Area {
	return Area{
		R1: min(a.R1, b.R1),
		C1: min(a.C1, b.C1),
		R2: max(a.R2, b.R2),
		C2: max(a.C2, b.C2),
	}
}

// String returns the area in A1 range notation.
func (a Area) String() string {
	start, _ := excelize.CoordinatesToCellName(a.C1, a.R1)
	end, _ := excelize.CoordinatesToCellName(a.C2, a.R2)
	return start + ":" + end
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]Area {
	result := make(map[string][]Area)

	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			sheetName, areas := parsePrintAreaReference(dn.RefersTo)
			if sheetName != "" && len(areas) > 0 {
				result[sheetName] = append(result[sheetName], areas...)
			}
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []Area) {
	var areas []Area

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.Trim(part[:idx], "'")
			if sheetName == "" {
				sheetName = sheet
			}
			if area, ok := parseRange(part[idx+1:]); ok {
				areas = append(areas, area)
			}
		}
	}

	return sheetName, areas
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (Area, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return Area{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Area{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Area{}, false
	}

	return Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, true
}
