// Package animation builds CSS keyframe animations out of pixel grid frames.
package animation

import "go.uber.org/zap"

// KeyframesName is the @keyframes identifier referenced by generated classes.
const KeyframesName = "x"

// Options configures keyframe and animation class generation.
type Options struct {
	// Columns is the number of pixels per grid row.
	Columns int
	// PixelSize is the edge length of one pixel in CSS pixels.
	PixelSize float64
	// Duration is the animation cycle length in seconds.
	Duration float64
	// ClassName is the CSS class the animation is attached to.
	ClassName string
	// Logger receives per-frame diagnostics. Nil disables logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger.Named("animation")
}
