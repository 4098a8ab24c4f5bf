package pixelcss

import (
	"go.uber.org/zap"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/animation"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/shadow"
)

// BuildShadowData converts grid into box-shadow data.
//
//	BuildShadowData(models.Grid{"#4caf50", "#4caf50"}, ImageOptions{PixelSize: 10, Columns: 2})
//	// => "10px 10px 0 0 #4caf50, 20px 10px 0 0 #4caf50"
func BuildShadowData(grid models.Grid, opts ImageOptions) models.ShadowData {
	return shadow.Build(grid, opts.shadow())
}

// BuildImageClass returns a CSS class rule drawing grid as one box-shadow image.
func BuildImageClass(grid models.Grid, opts ImageOptions) string {
	namedLogger(opts.Logger).Debug("Building image class",
		zap.String("class", opts.ClassName), zap.Int("cells", len(grid)))
	return shadow.Class(grid, opts.shadow(), opts.ClassName)
}

// ComputeIntervals returns the keyframe boundaries of frames: 0 followed
// by each frame interval. Unreadable intervals are logged and count as 0.
func ComputeIntervals(frames []models.FrameSource, log *zap.Logger) []float64 {
	return animation.Intervals(frames, namedLogger(log))
}

// BuildAnimationKeyframes returns the keyframe map of frames, labeled by
// percentage range. Frames without a grid are logged and left out.
func BuildAnimationKeyframes(frames []models.FrameSource, opts AnimationOptions) *models.KeyframeMap {
	return animation.Keyframes(frames, opts.animation()).Keyframes
}

// BuildAnimation returns the full keyframe build result including
// per-frame outcomes.
func BuildAnimation(frames []models.FrameSource, opts AnimationOptions) animation.Result {
	return animation.Keyframes(frames, opts.animation())
}

// BuildAnimationClass returns a CSS class rule with vendor-prefixed
// animation declarations followed by the @keyframes block.
func BuildAnimationClass(frames []models.FrameSource, opts AnimationOptions) string {
	return animation.Class(frames, opts.animation())
}

// Frames converts plain frame records into frame sources.
func Frames(frames ...models.Frame) []models.FrameSource {
	out := make([]models.FrameSource, len(frames))
	for i, f := range frames {
		out[i] = f
	}
	return out
}
