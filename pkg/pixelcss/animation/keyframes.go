package animation

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/shadow"
)

// rangeGap separates the start of a range from the end of the previous one.
const rangeGap = 0.01

// FrameResult records what happened to one input frame.
type FrameResult struct {
	// Index is the position of the frame in the input.
	Index int
	// Label is the keyframe range label, empty when the frame was skipped.
	Label string
	// Err is set when the frame was skipped because its grid is missing.
	Err error
	// IntervalErr is set when the interval could not be read and 0 was used.
	IntervalErr error
}

// Skipped reports whether the frame produced no keyframe.
func (r FrameResult) Skipped() bool {
	return r.Err != nil
}

// Result is the outcome of building keyframes for a set of frames.
type Result struct {
	// Keyframes maps range labels to keyframes in frame order.
	Keyframes *models.KeyframeMap
	// Intervals are the boundaries the labels were computed from.
	Intervals []float64
	// Frames holds one entry per input frame.
	Frames []FrameResult
}

// Err combines every frame error of the result, or returns nil.
func (r Result) Err() error {
	var err error
	for _, f := range r.Frames {
		err = multierr.Append(err, f.IntervalErr)
		err = multierr.Append(err, f.Err)
	}
	return err
}

// Skipped returns the results of frames that produced no keyframe.
func (r Result) Skipped() []FrameResult {
	var out []FrameResult
	for _, f := range r.Frames {
		if f.Skipped() {
			out = append(out, f)
		}
	}
	return out
}

// Label returns the keyframe range label of frame idx given the boundaries.
// Ranges after the first start just past the previous boundary so that
// adjacent ranges do not share a point.
func Label(bounds []float64, idx int) string {
	var lo float64
	if idx > 0 && idx < len(bounds) {
		lo = bounds[idx] + rangeGap
	}
	hi := "undefined"
	if idx+1 < len(bounds) {
		hi = models.FormatNumber(bounds[idx+1])
	}
	return models.FormatNumber(lo) + "%, " + hi + "%"
}

// Keyframes builds the keyframe map of frames. Frames without a grid are
// skipped and reported in the result; they never abort the build.
func Keyframes(frames []models.FrameSource, opts Options) Result {
	log := opts.logger()
	bounds, intervalErrs := intervals(frames)

	res := Result{
		Keyframes: models.NewKeyframeMap(),
		Intervals: bounds,
		Frames:    make([]FrameResult, len(frames)),
	}

	dims := ";height: " + models.FormatNumber(opts.PixelSize) + "px; width: " +
		models.FormatNumber(opts.PixelSize) + "px;"

	for idx, frame := range frames {
		fr := FrameResult{Index: idx, IntervalErr: intervalErrs[idx]}
		if fr.IntervalErr != nil {
			log.Warn("Input data error: each frame must contain an interval value",
				zap.Int("frame", idx), zap.Error(fr.IntervalErr))
		}

		grid, err := frameGrid(frame)
		if err != nil {
			fr.Err = models.NewFrameError(idx, "grid", err)
			res.Frames[idx] = fr
			log.Warn("Input data error: each frame must contain a grid value, frame skipped",
				zap.Int("frame", idx), zap.Error(err))
			continue
		}

		boxShadow := shadow.String(grid, shadow.Options{
			Columns:   opts.Columns,
			PixelSize: opts.PixelSize,
		})
		fr.Label = Label(bounds, idx)
		res.Keyframes.Set(fr.Label, models.Keyframe{BoxShadow: boxShadow + dims})
		res.Frames[idx] = fr

		log.Debug("Built keyframe", zap.Int("frame", idx), zap.String("label", fr.Label),
			zap.Int("pixels", len(grid)))
	}

	return res
}

func frameGrid(frame models.FrameSource) (models.Grid, error) {
	if frame == nil {
		return nil, models.ErrMissingGrid
	}
	return frame.FrameGrid()
}
