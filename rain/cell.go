package rain

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tomatrix/parameter"
)

// Grid is the terminal character grid, fixed for the life of an engine
type Grid struct {
	Columns int
	Rows    int
}

// Cell is one falling glyph
type Cell struct {
	Glyph      rune
	Color      tcell.Color
	Speed      int     // Rows advanced per settle, [0, MaxSpeed)
	Volatility float64 // Settle happens only when a fresh draw exceeds this
	Column     int     // Fixed at spawn
	Row        int
	Ceiling    int // Grid rows at spawn, death boundary
}

// NewCell spawns a cell on row 0 of a random column
// Draw order: glyph, color, volatility, speed, column
func NewCell(r Rand, grid Grid, c Corpus) Cell {
	glyph := PickChar(r, c)
	color := PickColor(r)
	volatility := PickVolatility(r)
	speed := PickSpeed(r)

	return Cell{
		Glyph:      glyph,
		Color:      color,
		Speed:      speed,
		Volatility: volatility,
		Column:     r.Intn(grid.Columns),
		Row:        0,
		Ceiling:    grid.Rows,
	}
}

// Iterate runs one update step and reports whether the cell is still alive
//
// The cell settles only when a fresh draw exceeds its volatility, otherwise it
// stays frozen for this frame. A settle that would reach Ceiling-1 kills the
// cell; any other settle moves it down by Speed, mutates the glyph one time in
// MutateOdds and re-rolls speed, color and volatility.
//
// Speed 0 settles without moving and never dies until a re-roll gives it speed.
func (c *Cell) Iterate(r Rand, corpus Corpus) bool {
	if r.Float64() <= c.Volatility {
		return true
	}

	if c.Row+c.Speed >= c.Ceiling-1 {
		return false
	}
	c.Row += c.Speed

	if r.Intn(parameter.MutateOdds) == 0 {
		c.Glyph = PickChar(r, corpus)
	}

	c.Speed = PickSpeed(r)
	c.Color = PickColor(r)
	c.Volatility = PickVolatility(r)
	return true
}
