package render

import (
	"demon-waves/internal/radar"
	"math"
)

// radarGrid maps radar display coordinates onto terminal cells.
// A cell is about twice as tall as it is wide, so the grid has twice as many
// columns as rows to keep rings round.
type radarGrid struct {
	X, Y int // top-left cell
	Rows int
	Size float64 // radar display size being mapped
}

// Cols returns the grid width in terminal columns.
func (g radarGrid) Cols() int { return g.Rows * 2 }

// ToCell converts a radar pixel to a screen cell.
// visible is false when the result falls outside the grid.
func (g radarGrid) ToCell(p radar.Pixel) (sx, sy int, visible bool) {
	col := int(math.Round(p.X / g.Size * float64(g.Cols()-1)))
	row := int(math.Round(p.Y / g.Size * float64(g.Rows-1)))
	visible = col >= 0 && col < g.Cols() && row >= 0 && row < g.Rows
	return g.X + col, g.Y + row, visible
}
