package rain

import (
	"testing"

	"github.com/lixenwraith/tomatrix/parameter/visual"
	"github.com/lixenwraith/tomatrix/vmath"
)

func TestNewCell(t *testing.T) {
	grid := Grid{Columns: 20, Rows: 10}
	// glyph: non-blank, index 1; color 3; speed 2; column 7
	r := &scriptRand{t: t, ints: []int{1, 1, 3, 2, 7}, floats: []float64{0.25}}

	c := NewCell(r, grid, Corpus("AB "))

	want := Cell{
		Glyph:      'B',
		Color:      visual.RainPalette[3],
		Speed:      2,
		Volatility: 0.25,
		Column:     7,
		Row:        0,
		Ceiling:    10,
	}
	if c != want {
		t.Errorf("NewCell = %+v, want %+v", c, want)
	}
}

func TestNewCellBounds(t *testing.T) {
	r := vmath.NewFastRand(11)
	grid := Grid{Columns: 13, Rows: 7}

	for i := 0; i < 2000; i++ {
		c := NewCell(r, grid, Corpus("abc"))
		if c.Column < 0 || c.Column >= grid.Columns {
			t.Fatalf("Column %d outside [0,%d)", c.Column, grid.Columns)
		}
		if c.Row != 0 {
			t.Fatalf("Spawned on row %d, want 0", c.Row)
		}
		if c.Ceiling != grid.Rows {
			t.Fatalf("Ceiling %d, want %d", c.Ceiling, grid.Rows)
		}
	}
}

func TestIterateBoundary(t *testing.T) {
	tests := []struct {
		name      string
		row       int
		speed     int
		ceiling   int
		wantAlive bool
		wantRow   int
	}{
		{"advance from top", 0, 2, 10, true, 2},
		{"land one above limit", 5, 3, 10, true, 8},
		{"reach ceiling minus one", 6, 3, 10, false, 6},
		{"overshoot", 7, 3, 10, false, 7},
		{"zero speed near bottom", 8, 0, 10, true, 8},
		{"single row grid", 0, 0, 1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cell{Glyph: 'x', Row: tt.row, Speed: tt.speed, Ceiling: tt.ceiling, Volatility: 0}
			// settle draw, then mutate miss, speed, color, volatility
			r := &scriptRand{t: t, ints: []int{5, 1, 0}, floats: []float64{0.5, 0.2}}

			alive := c.Iterate(r, Corpus("x"))
			if alive != tt.wantAlive {
				t.Errorf("alive = %v, want %v", alive, tt.wantAlive)
			}
			if c.Row != tt.wantRow {
				t.Errorf("row = %d, want %d", c.Row, tt.wantRow)
			}
		})
	}
}

func TestIterateRerollsAfterSettle(t *testing.T) {
	c := Cell{Glyph: 'x', Color: visual.RainPalette[0], Speed: 1, Volatility: 0.1, Ceiling: 20}
	// mutate hit: non-blank, index 2; speed 3; color 4
	r := &scriptRand{t: t, ints: []int{0, 1, 2, 3, 4}, floats: []float64{0.9, 0.6}}

	if !c.Iterate(r, Corpus("xyz")) {
		t.Fatal("Expected cell to stay alive")
	}

	if c.Row != 1 {
		t.Errorf("Row = %d, want 1", c.Row)
	}
	if c.Glyph != 'z' {
		t.Errorf("Glyph = %q, want mutated 'z'", c.Glyph)
	}
	if c.Speed != 3 {
		t.Errorf("Speed = %d, want 3", c.Speed)
	}
	if c.Color != visual.RainPalette[4] {
		t.Errorf("Color = %v, want %v", c.Color, visual.RainPalette[4])
	}
	if c.Volatility != 0.6 {
		t.Errorf("Volatility = %v, want 0.6", c.Volatility)
	}
}

func TestIterateFrozen(t *testing.T) {
	tests := []struct {
		name string
		draw float64
	}{
		{"below volatility", 0.3},
		{"equal to volatility", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Cell{Glyph: 'q', Color: visual.RainPalette[2], Speed: 3, Volatility: 0.5, Column: 4, Row: 2, Ceiling: 10}
			c := before
			r := &scriptRand{t: t, ints: []int{0, 0, 0}, floats: []float64{tt.draw}}

			if !c.Iterate(r, Corpus("q")) {
				t.Fatal("Frozen cell reported dead")
			}
			if c != before {
				t.Errorf("Frozen cell changed: %+v, want %+v", c, before)
			}
			if len(r.ints) != 3 {
				t.Error("Frozen branch consumed integer draws")
			}
		})
	}
}

// cycleRand always settles a 0.1-volatility cell and re-rolls speed 0
type cycleRand struct{ n int }

func (c *cycleRand) Intn(int) int { return 0 }

func (c *cycleRand) Float64() float64 {
	c.n++
	if c.n%2 == 1 {
		return 0.9 // Settle draw
	}
	return 0.1 // Re-rolled volatility
}

func TestZeroSpeedNeverMoves(t *testing.T) {
	c := Cell{Glyph: 'z', Speed: 0, Volatility: 0.1, Column: 3, Row: 4, Ceiling: 10}
	r := &cycleRand{}

	for i := 0; i < 1000; i++ {
		if !c.Iterate(r, Corpus("z")) {
			t.Fatalf("Zero-speed cell died on step %d", i)
		}
		if c.Row != 4 {
			t.Fatalf("Zero-speed cell moved to row %d on step %d", c.Row, i)
		}
		if c.Speed != 0 {
			t.Fatalf("Speed re-rolled to %d, fake should keep 0", c.Speed)
		}
	}
}
