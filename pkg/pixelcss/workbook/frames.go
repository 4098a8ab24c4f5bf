// Package workbook loads pixel grids drawn in xlsx worksheets.
//
// Every worksheet is one frame. A pixel is a cell holding a "#hex" color
// value or a cell with a solid fill. The sheet's print area bounds the grid;
// without one, the bounding box of painted cells across all loaded sheets
// is used so that every frame shares the same geometry.
package workbook

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/animation"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

// Default scan window used for sheets without a print area.
const (
	DefaultScanRows    = 128
	DefaultScanColumns = 128
)

// Options configures workbook loading.
type Options struct {
	// Sheets restricts loading to the named sheets. Empty loads every sheet.
	Sheets []string
	// NaturalOrder sorts sheets by name in natural order ("f2" before "f10")
	// instead of workbook order.
	NaturalOrder bool
	// Intervals are the frame end percentages. If nil, frames are spaced evenly.
	Intervals []float64
	// ScanRows and ScanColumns bound the search for painted cells
	// on sheets without a print area.
	ScanRows    int
	ScanColumns int
	// Logger receives loading diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

func (o Options) scanArea() Area {
	rows, cols := o.ScanRows, o.ScanColumns
	if rows <= 0 {
		rows = DefaultScanRows
	}
	if cols <= 0 {
		cols = DefaultScanColumns
	}
	return Area{R1: 1, C1: 1, R2: rows, C2: cols}
}

// Animation holds the frames read from a workbook.
type Animation struct {
	// BookName is the workbook file name (no path), empty for readers.
	BookName string
	// Sheets lists the sheet of every frame.
	Sheets []string
	// Area is the cell range every frame grid was read from.
	Area Area
	// Columns is the grid column count.
	Columns int
	// Frames holds one frame per sheet.
	Frames []models.Frame
}

// Sources returns the frames as frame sources.
func (a *Animation) Sources() []models.FrameSource {
	out := make([]models.FrameSource, len(a.Frames))
	for i, f := range a.Frames {
		out[i] = f
	}
	return out
}

// Open reads the frames of the xlsx file at path.
func Open(path string, opts Options) (*Animation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	anim, err := Load(f, opts)
	if err != nil {
		return nil, err
	}
	anim.BookName = filepath.Base(path)
	return anim, nil
}

// Load reads the frames of an open workbook.
func Load(f *excelize.File, opts Options) (*Animation, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("workbook")

	sheets := opts.Sheets
	if len(sheets) == 0 {
		sheets = f.GetSheetList()
	}
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	if opts.NaturalOrder {
		sheets = append([]string(nil), sheets...)
		sort.Sort(natural.StringSlice(sheets))
	}

	intervals := opts.Intervals
	if intervals == nil {
		intervals = animation.EvenIntervals(len(sheets))
	}
	if len(intervals) != len(sheets) {
		return nil, fmt.Errorf("%w: %d intervals for %d sheets", ErrIntervalCount, len(intervals), len(sheets))
	}

	printAreas := ExtractPrintAreas(f)
	cr := newCellReader(f)

	var (
		area  Area
		found bool
		read  = make([]*pixels, len(sheets))
	)
	for i, sheet := range sheets {
		region, fixed := opts.scanArea(), false
		if areas := printAreas[sheet]; len(areas) > 0 {
			region, fixed = areas[0], true
		}

		p, err := cr.readArea(sheet, region)
		if err != nil {
			return nil, err
		}
		read[i] = p

		sheetArea := p.bounds
		if fixed {
			sheetArea = region
		} else if !p.painted() {
			log.Warn("Sheet has no painted cells", zap.String("sheet", sheet))
			continue
		}

		if !found {
			area, found = sheetArea, true
		} else {
			area = area.Union(sheetArea)
		}
		log.Debug("Read sheet pixels", zap.String("sheet", sheet),
			zap.String("area", sheetArea.String()), zap.Int("pixels", len(p.cells)))
	}
	if !found {
		return nil, ErrNoPixels
	}

	anim := &Animation{
		Sheets:  sheets,
		Area:    area,
		Columns: area.Columns(),
		Frames:  make([]models.Frame, len(sheets)),
	}
	for i, p := range read {
		anim.Frames[i] = models.Frame{
			Grid:     p.grid(area),
			Interval: intervals[i],
		}
	}

	return anim, nil
}
