package rain

import (
	"github.com/lixenwraith/tomatrix/parameter"
)

// SpawnCount returns the batch size for a frame, uniform in [0, columns/10)
// Grids narrower than 20 columns never spawn
func SpawnCount(r Rand, columns int) int {
	return r.Intn(columns / parameter.SpawnColumnsPerCell)
}

// Spawn creates a batch of independent cells at row 0
func Spawn(r Rand, grid Grid, c Corpus) []Cell {
	n := SpawnCount(r, grid.Columns)
	if n == 0 {
		return nil
	}

	cells := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		cells = append(cells, NewCell(r, grid, c))
	}
	return cells
}
