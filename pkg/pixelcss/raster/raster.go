// Package raster reads pixel grids from bitmap and SVG sprites.
//
// Every image pixel becomes one grid cell. Animated GIFs yield one frame
// per image with intervals taken from the frame delays.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/animation"
	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

// DefaultAlphaThreshold is the alpha below which a pixel is left empty.
const DefaultAlphaThreshold = 128

// Sentinel errors for sprite decoding.
var (
	ErrUnsupported = errors.New("unsupported sprite format")
	ErrEmptyImage  = errors.New("sprite has no pixels")
)

// Options configures sprite decoding.
type Options struct {
	// Columns and Rows resize the sprite before it is read. Zero keeps the
	// source size; when only one is set the aspect ratio is preserved.
	Columns int
	Rows    int
	// AlphaThreshold is the minimum alpha of a painted pixel.
	// If 0, DefaultAlphaThreshold is used.
	AlphaThreshold uint8
	// Logger receives decoding diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

func (o Options) threshold() uint8 {
	if o.AlphaThreshold == 0 {
		return DefaultAlphaThreshold
	}
	return o.AlphaThreshold
}

// Sprite holds the frames read from an image.
type Sprite struct {
	// Kind is the detected format ("png", "gif", "svg", ...).
	Kind string
	// Columns and Rows are the grid dimensions shared by all frames.
	Columns int
	Rows    int
	Frames  []models.Frame
}

// Sources returns the frames as frame sources.
func (s *Sprite) Sources() []models.FrameSource {
	out := make([]models.FrameSource, len(s.Frames))
	for i, f := range s.Frames {
		out[i] = f
	}
	return out
}

// Detect reports the sprite format of data, if it is one this package reads.
func Detect(data []byte) (string, bool) {
	if isSVG(data) {
		return "svg", true
	}
	if !filetype.IsImage(data) {
		return "", false
	}
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", false
	}
	return kind.Extension, true
}

// Open reads the sprite file at path.
func Open(path string, opts Options) (*Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts)
}

// Decode reads a sprite from its encoded bytes.
func Decode(data []byte, opts Options) (*Sprite, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("raster")

	kind, ok := Detect(data)
	if !ok {
		return nil, ErrUnsupported
	}

	var (
		images    []image.Image
		intervals []float64
	)
	switch kind {
	case "svg":
		img, err := rasterizeSVG(data, opts.Columns, opts.Rows)
		if err != nil {
			return nil, fmt.Errorf("rasterize svg: %w", err)
		}
		images = []image.Image{img}
	case "gif":
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode gif: %w", err)
		}
		images = compose(g)
		intervals = delayIntervals(g.Delay, len(images))
	default:
		img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		images = []image.Image{img}
	}
	if len(images) == 0 {
		return nil, ErrEmptyImage
	}
	if intervals == nil {
		intervals = animation.EvenIntervals(len(images))
	}

	sprite := &Sprite{Kind: kind, Frames: make([]models.Frame, len(images))}
	for i, img := range images {
		img = resize(img, opts.Columns, opts.Rows)
		b := img.Bounds()
		if b.Empty() {
			return nil, ErrEmptyImage
		}
		if i == 0 {
			sprite.Columns, sprite.Rows = b.Dx(), b.Dy()
		}
		sprite.Frames[i] = models.Frame{Grid: Grid(img, opts.threshold()), Interval: intervals[i]}
	}

	log.Debug("Decoded sprite",
		zap.String("kind", kind),
		zap.Int("frames", len(sprite.Frames)),
		zap.Int("columns", sprite.Columns),
		zap.Int("rows", sprite.Rows))
	return sprite, nil
}

// Grid converts img into a row-major pixel grid. Pixels with alpha below
// threshold become empty cells.
func Grid(img image.Image, threshold uint8) models.Grid {
	b := img.Bounds()
	grid := make(models.Grid, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); uint8(a>>8) < threshold {
				grid = append(grid, "")
				continue
			}
			col, ok := colorful.MakeColor(c)
			if !ok {
				grid = append(grid, "")
				continue
			}
			grid = append(grid, col.Clamped().Hex())
		}
	}
	return grid
}

func resize(img image.Image, columns, rows int) image.Image {
	if columns <= 0 && rows <= 0 {
		return img
	}
	b := img.Bounds()
	if (columns <= 0 || columns == b.Dx()) && (rows <= 0 || rows == b.Dy()) {
		return img
	}
	return imaging.Resize(img, max(columns, 0), max(rows, 0), imaging.NearestNeighbor)
}

// delayIntervals converts GIF frame delays into cumulative end percentages.
func delayIntervals(delays []int, n int) []float64 {
	total := 0
	for i := 0; i < n && i < len(delays); i++ {
		total += delays[i]
	}
	if total <= 0 {
		return nil
	}

	out := make([]float64, n)
	elapsed := 0
	for i := range out {
		if i < len(delays) {
			elapsed += delays[i]
		}
		out[i] = math.Round(float64(elapsed)*10000/float64(total)) / 100
	}
	out[n-1] = 100
	return out
}
