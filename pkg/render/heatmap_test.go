package render

import (
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
)

func TestHeatmapAllZeroGrid(t *testing.T) {
	grid := canvas.NewGrid(canvas.NewSector(0, 0, 5, 5))

	img, err := Heatmap(grid, DefaultOptions())
	if !errors.Is(err, ErrNothingToRender) {
		t.Errorf("Heatmap() error = %v, want ErrNothingToRender", err)
	}
	if img != nil {
		t.Error("Heatmap() returned an image for an all-zero grid")
	}
}

func TestHeatmapDimensions(t *testing.T) {
	sector := canvas.NewSector(10, 20, 14, 30) // height 4, width 10
	grid := canvas.NewGrid(sector)
	grid.Set(canvas.Coordinate{X: 11, Y: 25}, 8)

	img, err := Heatmap(grid, Options{Scale: 3})
	if err != nil {
		t.Fatalf("Heatmap() = %v, want nil", err)
	}

	bounds := img.Bounds()
	// Horizontal axis is canvas Y (width 10), vertical is X (height 4),
	// plus the title strip.
	if bounds.Dx() != 10*3 {
		t.Errorf("image width = %d, want %d", bounds.Dx(), 10*3)
	}
	if bounds.Dy() != 4*3+titleBarHeight {
		t.Errorf("image height = %d, want %d", bounds.Dy(), 4*3+titleBarHeight)
	}
}

func TestHeatmapHotCellBrighter(t *testing.T) {
	sector := canvas.NewSector(0, 0, 2, 2)
	grid := canvas.NewGrid(sector)
	grid.Set(canvas.Coordinate{X: 0, Y: 0}, 1)
	grid.Set(canvas.Coordinate{X: 1, Y: 1}, 1000)

	img, err := Heatmap(grid, Options{Scale: 1})
	if err != nil {
		t.Fatalf("Heatmap() = %v, want nil", err)
	}

	// Cell (1,1) sits one pixel right and below cell (0,0); max level must
	// render strictly brighter than level 1.
	cold := img.At(0, titleBarHeight)
	hot := img.At(1, titleBarHeight+1)

	cr, cg, cb, _ := cold.RGBA()
	hr, hg, hb, _ := hot.RGBA()
	if hr+hg+hb <= cr+cg+cb {
		t.Errorf("hot cell %v not brighter than cold cell %v", hot, cold)
	}
}

func TestLogNorm(t *testing.T) {
	denom := math.Log(1000)

	tests := []struct {
		level int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{1000, 1},
	}
	for _, tt := range tests {
		if got := logNorm(tt.level, denom); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("logNorm(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}

	mid := logNorm(31, denom) // ~ln(31)/ln(1000) ~ 0.497
	if mid <= 0.4 || mid >= 0.6 {
		t.Errorf("logNorm(31) = %v, want roughly 0.5", mid)
	}

	// Max level 1: denominator vanishes, upgraded pixels map to 1.
	if got := logNorm(1, 0); got != 1 {
		t.Errorf("logNorm(1, 0) = %v, want 1", got)
	}
}

func TestHeatColorEndpoints(t *testing.T) {
	low := heatColor(0)
	high := heatColor(1)

	if low == high {
		t.Error("heatColor(0) equals heatColor(1)")
	}
	if high.R != 0xFF || high.G != 0xFF || high.B != 0xFF {
		t.Errorf("heatColor(1) = %v, want white", high)
	}
}

func TestWritePNG(t *testing.T) {
	grid := canvas.NewGrid(canvas.NewSector(0, 0, 3, 3))
	grid.Set(canvas.Coordinate{X: 1, Y: 1}, 50)

	img, err := Heatmap(grid, DefaultOptions())
	if err != nil {
		t.Fatalf("Heatmap() = %v, want nil", err)
	}

	path := filepath.Join(t.TempDir(), "heatmap.png")
	if err := WritePNG(img, path); err != nil {
		t.Fatalf("WritePNG() = %v, want nil", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode written png: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
