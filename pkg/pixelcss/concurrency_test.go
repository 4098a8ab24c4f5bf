package pixelcss

import (
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBuildersConcurrentCallers(t *testing.T) {
	frames := Frames(
		models.Frame{Grid: grid2x2, Interval: 25},
		models.Frame{Grid: models.Grid{"#000", "", "", "#fff"}, Interval: 60},
		models.Frame{Grid: grid2x2, Interval: 100},
	)
	opts := AnimationOptions{PixelSize: 8, Columns: 2, Duration: 2, ClassName: "blink"}
	want := BuildAnimationClass(frames, opts)

	var g errgroup.Group
	results := make([]string, 32)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = BuildAnimationClass(frames, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for i, got := range results {
		if got != want {
			t.Errorf("caller %d got a different result:\n%s", i, got)
		}
	}
}
