package workbook

import (
	"errors"
	"fmt"
)

// ErrNoSheets indicates no worksheet was selected for loading.
var ErrNoSheets = errors.New("no sheets to load")

// ErrNoPixels indicates none of the loaded sheets has a painted cell.
var ErrNoPixels = errors.New("no painted cells found")

// ErrIntervalCount indicates the number of intervals does not match the number of frames.
var ErrIntervalCount = errors.New("interval count does not match frame count")

// SheetError represents an error while reading pixels from one sheet.
type SheetError struct {
	SheetName string
	Cell      string
	Err       error
}

func (e *SheetError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("pixel error in sheet %q (%s): %v", e.SheetName, e.Cell, e.Err)
	}
	return fmt.Sprintf("pixel error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, cell string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Cell:      cell,
		Err:       err,
	}
}
