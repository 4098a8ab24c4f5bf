package models

import (
	"errors"
	"fmt"
)

// ErrMissingGrid indicates a frame has no resolvable pixel grid.
var ErrMissingGrid = errors.New("frame must contain a grid value")

// ErrMissingInterval indicates a frame interval could not be read as a number.
var ErrMissingInterval = errors.New("frame must contain an interval value")

// FrameError represents a failure to read one frame of an animation.
type FrameError struct {
	Index int
	Field string // "grid" or "interval"
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("input data error in frame %d (%s): %v", e.Index, e.Field, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// NewFrameError creates a new FrameError.
func NewFrameError(index int, field string, err error) *FrameError {
	return &FrameError{
		Index: index,
		Field: field,
		Err:   err,
	}
}
