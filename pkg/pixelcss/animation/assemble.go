package animation

import (
	"strings"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

var vendorPrefixes = []string{"", "-webkit-", "-moz-", "-o-"}

// Class returns a CSS class rule running the frames as an infinite
// animation, followed by the matching @keyframes block.
func Class(frames []models.FrameSource, opts Options) string {
	return Render(Keyframes(frames, opts).Keyframes, opts)
}

// Render formats an already built keyframe map as a class rule and
// @keyframes block.
func Render(keyframes *models.KeyframeMap, opts Options) string {
	var b strings.Builder

	b.WriteString("." + opts.ClassName + " {\n  position: absolute;\n  ")
	duration := models.FormatNumber(opts.Duration)
	for i, prefix := range vendorPrefixes {
		b.WriteString(prefix + "animation: " + KeyframesName + " " + duration + "s infinite;\n")
		if i < len(vendorPrefixes)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("}\n\n")

	b.WriteString("@keyframes " + KeyframesName + " {\n")
	if keyframes != nil {
		keyframes.Each(func(label string, kf models.Keyframe) {
			b.WriteString(label + "{\n  box-shadow: " + kf.BoxShadow + "\n  }\n")
		})
	}
	b.WriteString("}")

	return b.String()
}
