// Package pixelcss renders pixel grids as pure-CSS box-shadow images and
// keyframe animations.
package pixelcss

import (
	"go.uber.org/zap"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/animation"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/shadow"
)

// Format re-exports models.Format.
type Format = models.Format

const (
	// FormatString produces a single box-shadow value.
	FormatString = models.FormatString
	// FormatArray produces one entry per painted pixel.
	FormatArray = models.FormatArray
)

// ImageOptions configures single image generation.
type ImageOptions struct {
	// Columns is the number of pixels per grid row.
	Columns int
	// PixelSize is the edge length of one pixel in CSS pixels.
	PixelSize float64
	// BlurRadius is the blur radius in CSS pixels (0 disables blur).
	BlurRadius float64
	// SpreadRadius is the spread radius in CSS pixels (0 disables spread).
	SpreadRadius float64
	// Format specifies the shadow data format. Empty means FormatString.
	Format Format
	// ClassName is the CSS class used by BuildImageClass.
	ClassName string
	// Logger receives diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// AnimationOptions configures keyframe animation generation.
type AnimationOptions struct {
	// Columns is the number of pixels per grid row.
	Columns int
	// PixelSize is the edge length of one pixel in CSS pixels.
	PixelSize float64
	// Duration is the animation cycle length in seconds.
	Duration float64
	// ClassName is the CSS class the animation is attached to.
	ClassName string
	// Logger receives per-frame diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultImageOptions returns default image options.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Columns:   1,
		PixelSize: 10,
		Format:    FormatString,
	}
}

// DefaultAnimationOptions returns default animation options.
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Columns:   1,
		PixelSize: 10,
		Duration:  1,
	}
}

func (o ImageOptions) shadow() shadow.Options {
	return shadow.Options{
		Columns:      o.Columns,
		PixelSize:    o.PixelSize,
		BlurRadius:   o.BlurRadius,
		SpreadRadius: o.SpreadRadius,
		Format:       o.Format,
	}
}

func (o AnimationOptions) animation() animation.Options {
	return animation.Options{
		Columns:   o.Columns,
		PixelSize: o.PixelSize,
		Duration:  o.Duration,
		ClassName: o.ClassName,
		Logger:    namedLogger(o.Logger),
	}
}

func namedLogger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log.Named("pixelcss")
}
