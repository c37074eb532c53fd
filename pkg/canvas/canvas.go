// Package canvas defines the coordinate system of the Zevent Place canvas:
// coordinates, rectangular sectors, and the dense level grid assembled from
// per-pixel fetch results.
//
// Axis convention: X is the vertical axis (increasing downward), Y the
// horizontal one. The remote service inverts the two; that translation
// happens at the wire boundary, never here.
package canvas

import (
	"errors"
	"fmt"
)

// Canvas dimensions. The Place canvas is a fixed 700x700 pixel grid.
const (
	MaxX = 700
	MaxY = 700
)

// ErrInvalidSector is returned when a sector does not fit the canvas.
var ErrInvalidSector = errors.New("invalid sector")

// Coordinate identifies a single pixel on the canvas.
type Coordinate struct {
	X int
	Y int
}

// String returns the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Sector is a half-open rectangle of canvas coordinates: every (x, y) with
// X1 <= x < X2 and Y1 <= y < Y2 belongs to it.
type Sector struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// NewSector builds a sector from its four corner values.
func NewSector(x1, y1, x2, y2 int) Sector {
	return Sector{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Validate checks the sector against the canvas bounds.
// A sector used for fetching must be validated before any request is sent.
func (s Sector) Validate() error {
	if s.X1 < 0 || s.Y1 < 0 || s.X1 > s.X2 || s.Y1 > s.Y2 || s.X2 > MaxX || s.Y2 > MaxY {
		return fmt.Errorf("%w: %s must fit the %dx%d canvas", ErrInvalidSector, s, MaxX, MaxY)
	}
	return nil
}

// Height returns the vertical extent (X2 - X1).
func (s Sector) Height() int {
	return s.X2 - s.X1
}

// Width returns the horizontal extent (Y2 - Y1).
func (s Sector) Width() int {
	return s.Y2 - s.Y1
}

// Size returns the number of coordinates the sector covers.
func (s Sector) Size() int {
	return s.Height() * s.Width()
}

// Contains reports whether the coordinate lies inside the sector.
func (s Sector) Contains(c Coordinate) bool {
	return c.X >= s.X1 && c.X < s.X2 && c.Y >= s.Y1 && c.Y < s.Y2
}

// Coordinates enumerates every coordinate in the sector in row-major order.
// Completion order of concurrent fetches does not matter downstream, but the
// enumeration itself is deterministic.
func (s Sector) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, s.Size())
	for x := s.X1; x < s.X2; x++ {
		for y := s.Y1; y < s.Y2; y++ {
			coords = append(coords, Coordinate{X: x, Y: y})
		}
	}
	return coords
}

// ColumnSlice returns the sub-sector covering columns [Y1+offset, Y1+offset+cols),
// clipped to the sector's own right edge.
func (s Sector) ColumnSlice(offset, cols int) Sector {
	y1 := s.Y1 + offset
	y2 := y1 + cols
	if y2 > s.Y2 {
		y2 = s.Y2
	}
	return Sector{X1: s.X1, Y1: y1, X2: s.X2, Y2: y2}
}

// String returns the sector as "(x1,y1)->(x2,y2)".
func (s Sector) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", s.X1, s.Y1, s.X2, s.Y2)
}
