package raster

import (
	"image"
	"image/draw"
	"image/gif"

	"github.com/disintegration/imaging"
)

// compose renders every GIF frame onto the logical screen, applying the
// disposal method of the previous frame, and returns the full images.
func compose(g *gif.GIF) []image.Image {
	if len(g.Image) == 0 {
		return nil
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = image.Rectangle{}
		for _, frame := range g.Image {
			screen = screen.Union(frame.Bounds())
		}
	}

	canvas := image.NewNRGBA(screen)
	out := make([]image.Image, len(g.Image))
	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = imaging.Clone(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		out[i] = imaging.Clone(canvas)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return out
}
