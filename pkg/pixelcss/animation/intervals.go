package animation

import (
	"go.uber.org/zap"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

// Intervals returns the keyframe boundaries of frames: 0 followed by
// the interval of every frame, in order.
//
// A frame whose interval cannot be read contributes 0 so that boundary
// i+1 always belongs to frame i. The failure is logged to log.
func Intervals(frames []models.FrameSource, log *zap.Logger) []float64 {
	if log == nil {
		log = zap.NewNop()
	}
	bounds, errs := intervals(frames)
	for i, err := range errs {
		if err != nil {
			log.Warn("Input data error: each frame must contain an interval value",
				zap.Int("frame", i), zap.Error(err))
		}
	}
	return bounds
}

// intervals returns the boundaries and a per-frame error slice aligned with frames.
func intervals(frames []models.FrameSource) ([]float64, []error) {
	bounds := make([]float64, 1, len(frames)+1)
	errs := make([]error, len(frames))
	for i, frame := range frames {
		var (
			v   float64
			err error
		)
		if frame == nil {
			err = models.ErrMissingInterval
		} else {
			v, err = frame.FrameInterval()
		}
		if err != nil {
			errs[i] = models.NewFrameError(i, "interval", err)
			v = 0
		}
		bounds = append(bounds, v)
	}
	return bounds, errs
}

// EvenIntervals returns n frame intervals splitting 0-100 into equal parts.
// The last interval is always exactly 100.
func EvenIntervals(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i+1) * 100 / float64(n)
	}
	out[n-1] = 100
	return out
}
