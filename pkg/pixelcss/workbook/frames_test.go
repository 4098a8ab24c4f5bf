package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

func fillStyle(t *testing.T, f *excelize.File, color string) int {
	t.Helper()
	id, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
	require.NoError(t, err)
	return id
}

// paint draws the 2x2 test sprite with its top-left corner at topLeft.
// Two pixels are fills and two are "#hex" values.
func paint(t *testing.T, f *excelize.File, sheet string, cells [4]string) {
	t.Helper()
	require.NoError(t, f.SetCellStyle(sheet, cells[0], cells[0], fillStyle(t, f, "#8BC34A")))
	require.NoError(t, f.SetCellValue(sheet, cells[1], "#673AB7"))
	require.NoError(t, f.SetCellStyle(sheet, cells[2], cells[2], fillStyle(t, f, "FF5722")))
	require.NoError(t, f.SetCellValue(sheet, cells[3], "#ffeb3b"))
}

func TestLoad_SingleSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	paint(t, f, "Sheet1", [4]string{"B2", "C2", "B3", "C3"})

	anim, err := Load(f, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet1"}, anim.Sheets)
	assert.Equal(t, Area{R1: 2, C1: 2, R2: 3, C2: 3}, anim.Area)
	assert.Equal(t, 2, anim.Columns)
	require.Len(t, anim.Frames, 1)
	assert.Equal(t, models.Grid{"#8bc34a", "#673ab7", "#ff5722", "#ffeb3b"}, anim.Frames[0].Grid)
	assert.Equal(t, 100.0, anim.Frames[0].Interval)
}

func TestLoad_FramesShareBounds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "frame10"))
	_, err := f.NewSheet("frame2")
	require.NoError(t, err)

	paint(t, f, "frame10", [4]string{"A1", "B1", "A2", "B2"})
	require.NoError(t, f.SetCellValue("frame2", "C2", "#000"))

	anim, err := Load(f, Options{NaturalOrder: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"frame2", "frame10"}, anim.Sheets)
	assert.Equal(t, "A1:C2", anim.Area.String())
	assert.Equal(t, 3, anim.Columns)
	assert.Equal(t, models.Grid{"", "", "", "", "", "#000000"}, anim.Frames[0].Grid)
	assert.Equal(t, models.Grid{"#8bc34a", "#673ab7", "", "#ff5722", "#ffeb3b", ""}, anim.Frames[1].Grid)
	assert.Equal(t, 50.0, anim.Frames[0].Interval)
	assert.Equal(t, 100.0, anim.Frames[1].Interval)
	assert.Len(t, anim.Sources(), 2)
}

func TestLoad_PrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	paint(t, f, "Sheet1", [4]string{"B2", "C2", "B3", "C3"})
	require.NoError(t, f.SetCellValue("Sheet1", "F9", "#123456"))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$C$3",
		Scope:    "Sheet1",
	}))

	anim, err := Load(f, Options{})
	require.NoError(t, err)

	assert.Equal(t, Area{R1: 1, C1: 1, R2: 3, C2: 3}, anim.Area)
	assert.Equal(t, models.Grid{
		"", "", "",
		"", "#8bc34a", "#673ab7",
		"", "#ff5722", "#ffeb3b",
	}, anim.Frames[0].Grid)
}

func TestLoad_Intervals(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	paint(t, f, "Sheet1", [4]string{"A1", "B1", "A2", "B2"})

	anim, err := Load(f, Options{Intervals: []float64{100}})
	require.NoError(t, err)
	assert.Equal(t, 100.0, anim.Frames[0].Interval)

	_, err = Load(f, Options{Intervals: []float64{50, 100}})
	assert.ErrorIs(t, err, ErrIntervalCount)
}

func TestLoad_Errors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := Load(f, Options{})
	assert.ErrorIs(t, err, ErrNoPixels)

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "#nothex"))
	_, err = Load(f, Options{})
	var se *SheetError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Sheet1", se.SheetName)
	assert.Equal(t, "A1", se.Cell)

	_, err = Load(f, Options{Sheets: []string{"missing"}})
	assert.Error(t, err)
}

func TestLoad_ScanWindow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "#fff"))
	require.NoError(t, f.SetCellValue("Sheet1", "E5", "#000"))

	anim, err := Load(f, Options{ScanRows: 3, ScanColumns: 3})
	require.NoError(t, err)
	assert.Equal(t, "A1:A1", anim.Area.String())
	assert.Equal(t, models.Grid{"#ffffff"}, anim.Frames[0].Grid)
}

func TestOpen(t *testing.T) {
	f := excelize.NewFile()
	paint(t, f, "Sheet1", [4]string{"A1", "B1", "A2", "B2"})
	path := filepath.Join(t.TempDir(), "sprite.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	anim, err := Open(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "sprite.xlsx", anim.BookName)
	assert.Equal(t, models.Grid{"#8bc34a", "#673ab7", "#ff5722", "#ffeb3b"}, anim.Frames[0].Grid)
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"#8BC34A", "#8bc34a", false},
		{"8BC34A", "#8bc34a", false},
		{"FF8BC34A", "#8bc34a", false},
		{"#f0c", "#ff00cc", false},
		{" #000000 ", "#000000", false},
		{"#12345", "", true},
		{"#zzzzzz", "", true},
	}

	for _, tt := range tests {
		result, err := normalizeColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("normalizeColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("normalizeColor(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
