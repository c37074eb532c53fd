// Package render turns a fetched level grid into a heat map image.
//
// Levels span several orders of magnitude (most pixels sit at level 0 or 1,
// contested zones climb into the thousands), so the color scale is
// logarithmic. Axes follow the Place visual convention: the horizontal image
// axis is the canvas Y axis and the vertical one is X, increasing downward.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
)

// ErrNothingToRender is returned when the grid's maximum level is 0.
// An all-zero grid means no pixel was ever upgraded (or the scan went
// wrong); there is nothing to show either way.
var ErrNothingToRender = errors.New("nothing to render: maximum level is 0")

// titleBarHeight is the pixel height of the title strip above the map.
const titleBarHeight = 18

// Options holds rendering options.
type Options struct {
	// Scale is the edge length in image pixels of one canvas pixel.
	Scale int
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{Scale: 4}
}

// Heatmap renders the grid as a log-scale heat map.
//
// The returned image carries a title strip summarizing the sector bounds and
// the maximum observed level. A grid whose maximum level is 0 produces no
// image and ErrNothingToRender.
func Heatmap(grid *canvas.Grid, opts Options) (image.Image, error) {
	maxLevel := grid.MaxLevel()
	if maxLevel == 0 {
		return nil, ErrNothingToRender
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	sector := grid.Sector()
	width := grid.Width() * opts.Scale
	height := grid.Height()*opts.Scale + titleBarHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{0x1A, 0x1A, 0x1A, 0xFF}}, image.Point{}, draw.Src)

	denom := math.Log(float64(maxLevel))
	for row := 0; row < grid.Height(); row++ {
		levels := grid.Row(row)
		for col, level := range levels {
			c := heatColor(logNorm(level, denom))
			fillCell(img, col*opts.Scale, titleBarHeight+row*opts.Scale, opts.Scale, c)
		}
	}

	title := fmt.Sprintf("(%d,%d) -> (%d,%d)  max %d", sector.X1, sector.Y1, sector.X2, sector.Y2, maxLevel)
	drawTitle(img, title)

	return img, nil
}

// WritePNG encodes the image to a PNG file.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// logNorm maps a level to [0,1] on a logarithmic scale. Level 0 maps to 0;
// when the maximum level is 1 the denominator vanishes and every upgraded
// pixel maps to 1.
func logNorm(level int, denom float64) float64 {
	if level <= 0 {
		return 0
	}
	if denom <= 0 {
		return 1
	}
	n := math.Log(float64(level)) / denom
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// heatColor maps a normalized value to a dark-blue -> red -> yellow -> white
// gradient.
func heatColor(norm float64) color.RGBA {
	stops := []color.RGBA{
		{0x10, 0x10, 0x40, 0xFF},
		{0x80, 0x10, 0x10, 0xFF},
		{0xFF, 0x60, 0x00, 0xFF},
		{0xFF, 0xE0, 0x40, 0xFF},
		{0xFF, 0xFF, 0xFF, 0xFF},
	}

	pos := norm * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	frac := pos - float64(i)
	return lerpColor(stops[i], stops[i+1], frac)
}

// lerpColor linearly interpolates between two colors.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: 0xFF,
	}
}

// fillCell fills one scaled canvas pixel.
func fillCell(img *image.RGBA, x, y, size int, c color.RGBA) {
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

// drawTitle writes the title text into the strip at the top of the image.
func drawTitle(img *image.RGBA, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 13),
	}
	d.DrawString(text)
}
