package pixelcss

import "github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"

// ErrMissingGrid indicates a frame has no resolvable pixel grid.
var ErrMissingGrid = models.ErrMissingGrid

// ErrMissingInterval indicates a frame interval could not be read.
var ErrMissingInterval = models.ErrMissingInterval

// FrameError represents a failure to read one animation frame.
type FrameError = models.FrameError
