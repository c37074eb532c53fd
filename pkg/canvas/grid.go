package canvas

import "fmt"

// Grid is the dense result of fetching a sector: one level value per
// coordinate, indexed by (x - X1, y - Y1) of the originating sector.
// A grid is owned exclusively by its caller; concurrent fetches each write
// a disjoint cell, so no locking is needed around Set.
type Grid struct {
	sector Sector
	levels [][]int
}

// NewGrid allocates a zeroed grid sized for the given sector.
func NewGrid(sector Sector) *Grid {
	levels := make([][]int, sector.Height())
	for i := range levels {
		levels[i] = make([]int, sector.Width())
	}
	return &Grid{sector: sector, levels: levels}
}

// Sector returns the sector this grid was allocated for.
func (g *Grid) Sector() Sector {
	return g.sector
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.sector.Height()
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.sector.Width()
}

// Set stores the level for a coordinate. Coordinates outside the grid's
// sector are rejected so a stray fetch result cannot corrupt a neighbor cell.
func (g *Grid) Set(c Coordinate, level int) error {
	if !g.sector.Contains(c) {
		return fmt.Errorf("coordinate %s outside grid sector %s", c, g.sector)
	}
	g.levels[c.X-g.sector.X1][c.Y-g.sector.Y1] = level
	return nil
}

// At returns the level stored for a coordinate inside the grid's sector.
func (g *Grid) At(c Coordinate) (int, error) {
	if !g.sector.Contains(c) {
		return 0, fmt.Errorf("coordinate %s outside grid sector %s", c, g.sector)
	}
	return g.levels[c.X-g.sector.X1][c.Y-g.sector.Y1], nil
}

// Row returns the underlying slice for one row. The slice is shared with the
// grid, not copied.
func (g *Grid) Row(i int) []int {
	return g.levels[i]
}

// MaxLevel returns the highest level in the grid, 0 for an empty grid.
func (g *Grid) MaxLevel() int {
	max := 0
	for _, row := range g.levels {
		for _, level := range row {
			if level > max {
				max = level
			}
		}
	}
	return max
}

// CopyInto writes this grid's cells into dst. Both grids address cells by
// absolute canvas coordinate, so a batch sub-grid lands at the right column
// offset of the full grid without any index arithmetic at the call site.
func (g *Grid) CopyInto(dst *Grid) error {
	for x := g.sector.X1; x < g.sector.X2; x++ {
		for y := g.sector.Y1; y < g.sector.Y2; y++ {
			c := Coordinate{X: x, Y: y}
			level, err := g.At(c)
			if err != nil {
				return err
			}
			if err := dst.Set(c, level); err != nil {
				return err
			}
		}
	}
	return nil
}
