package pixelcss

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

var grid2x2 = models.Grid{"#8bc34a", "#673ab7", "#ff5722", "#ffeb3b"}

const boxShadow2x2 = "10px 10px 0 0 #8bc34a, 20px 10px 0 0 #673ab7, 10px 20px 0 0 #ff5722, 20px 20px 0 0 #ffeb3b"

func TestBuildShadowData_String(t *testing.T) {
	data := BuildShadowData(grid2x2, ImageOptions{PixelSize: 10, Columns: 2, Format: FormatString})
	assert.Equal(t, FormatString, data.Format)
	assert.Equal(t, boxShadow2x2, data.String())
}

func TestBuildShadowData_Array(t *testing.T) {
	data := BuildShadowData(grid2x2, ImageOptions{PixelSize: 10, Columns: 2, Format: FormatArray})
	require.Equal(t, FormatArray, data.Format)
	assert.Equal(t, []models.ShadowEntry{
		{X: 10, Y: 10, Color: "#8bc34a"},
		{X: 20, Y: 10, Color: "#673ab7"},
		{X: 10, Y: 20, Color: "#ff5722"},
		{X: 20, Y: 20, Color: "#ffeb3b"},
	}, data.Entries)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"x":10,"y":10,"color":"#8bc34a","blurRadius":0,"spreadRadius":0},
		{"x":20,"y":10,"color":"#673ab7","blurRadius":0,"spreadRadius":0},
		{"x":10,"y":20,"color":"#ff5722","blurRadius":0,"spreadRadius":0},
		{"x":20,"y":20,"color":"#ffeb3b","blurRadius":0,"spreadRadius":0}
	]`, string(raw))
}

func TestBuildShadowData_RadiusTypes(t *testing.T) {
	data := BuildShadowData(models.Grid{"#fff"}, ImageOptions{PixelSize: 1, Columns: 1, BlurRadius: 2, Format: FormatArray})
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x":1,"y":1,"color":"#fff","blurRadius":"2px","spreadRadius":0}]`, string(raw))
	assert.Equal(t, "1px 1px 2px 0 #fff", BuildShadowData(models.Grid{"#fff"}, ImageOptions{PixelSize: 1, Columns: 1, BlurRadius: 2}).String())
}

func TestBuildShadowData_EntryCountMatchesPaintedCells(t *testing.T) {
	grid := models.Grid{"#000", "", "#000", "#000", "", "", "#000"}
	data := BuildShadowData(grid, ImageOptions{PixelSize: 3, Columns: 3, Format: FormatArray})
	assert.Len(t, data.Entries, 4)
}

func TestBuildImageClass(t *testing.T) {
	got := BuildImageClass(grid2x2, ImageOptions{PixelSize: 10, Columns: 2, ClassName: "cssClass"})
	assert.Equal(t, ".cssClass {\n  box-shadow: "+boxShadow2x2+";\n  height: 10px;\n  width: 10px;\n}", got)
}

func TestComputeIntervals(t *testing.T) {
	frames := Frames(
		models.Frame{Interval: 25},
		models.Frame{Interval: 50},
		models.Frame{Interval: 100},
	)
	assert.Equal(t, []float64{0, 25, 50, 100}, ComputeIntervals(frames, nil))
}

func TestBuildAnimationKeyframes(t *testing.T) {
	frames := Frames(
		models.Frame{Grid: grid2x2, Interval: 10},
		models.Frame{Grid: grid2x2, Interval: 70},
		models.Frame{Grid: grid2x2, Interval: 100},
	)
	km := BuildAnimationKeyframes(frames, AnimationOptions{PixelSize: 10, Columns: 2, ClassName: "cssClass"})

	require.Equal(t, 3, km.Len())
	raw, err := json.Marshal(km)
	require.NoError(t, err)

	want := boxShadow2x2 + ";height: 10px; width: 10px;"
	assert.JSONEq(t, `{
		"0%, 10%": {"boxShadow": "`+want+`"},
		"10.01%, 70%": {"boxShadow": "`+want+`"},
		"70.01%, 100%": {"boxShadow": "`+want+`"}
	}`, string(raw))
}

func TestBuildAnimationClass_Labels(t *testing.T) {
	frames := Frames(
		models.Frame{Grid: grid2x2, Interval: 10},
		models.Frame{Grid: grid2x2, Interval: 70},
		models.Frame{Grid: grid2x2, Interval: 100},
	)
	out := BuildAnimationClass(frames, AnimationOptions{PixelSize: 10, Columns: 2, ClassName: "cssClass", Duration: 5})

	assert.Contains(t, out, "\n0%, 10%{\n")
	assert.Contains(t, out, "\n10.01%, 70%{\n")
	assert.Contains(t, out, "\n70.01%, 100%{\n")
	assert.Contains(t, out, "  -webkit-animation: x 5s infinite;\n")
}

func TestBuildAnimation_SkippedFramesAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	frames := []models.FrameSource{
		models.Frame{Grid: grid2x2, Interval: 50},
		models.MapFrame{"interval": 100},
	}

	res := BuildAnimation(frames, AnimationOptions{PixelSize: 10, Columns: 2, Logger: zap.New(core)})

	assert.Equal(t, 1, res.Keyframes.Len())
	require.Len(t, res.Skipped(), 1)
	assert.ErrorIs(t, res.Err(), ErrMissingGrid)

	var fe *FrameError
	require.ErrorAs(t, res.Skipped()[0].Err, &fe)
	assert.Equal(t, 1, fe.Index)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "pixelcss.animation", logs.All()[0].LoggerName)
}

func TestBuilders_Idempotent(t *testing.T) {
	frames := Frames(
		models.Frame{Grid: grid2x2, Interval: 40},
		models.Frame{Grid: models.Grid{"", "#000", "#111", ""}, Interval: 100},
	)
	aopts := AnimationOptions{PixelSize: 4, Columns: 2, Duration: 1.5, ClassName: "spin"}
	iopts := ImageOptions{PixelSize: 4, Columns: 2, BlurRadius: 1, ClassName: "img"}

	assert.Equal(t, BuildAnimationClass(frames, aopts), BuildAnimationClass(frames, aopts))
	assert.Equal(t, BuildImageClass(grid2x2, iopts), BuildImageClass(grid2x2, iopts))
	assert.Equal(t, BuildShadowData(grid2x2, iopts), BuildShadowData(grid2x2, iopts))
	assert.Equal(t, ComputeIntervals(frames, nil), ComputeIntervals(frames, nil))
}

func TestDefaultOptions(t *testing.T) {
	img := DefaultImageOptions()
	assert.Equal(t, FormatString, img.Format)
	assert.Equal(t, 10.0, img.PixelSize)

	anim := DefaultAnimationOptions()
	assert.Equal(t, 1.0, anim.Duration)
	assert.Equal(t, 1, anim.Columns)
}
