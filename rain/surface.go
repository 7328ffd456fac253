package rain

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/lixenwraith/tomatrix/parameter"
)

// ErrCoordinateRange is returned when a cell position does not fit the terminal coordinate space
var ErrCoordinateRange = errors.New("coordinate out of terminal range")

// Surface receives the draw calls of a frame
// Coordinates are 0-indexed; nothing is erased between frames
type Surface interface {
	MoveTo(col, row uint16) error
	SetForeground(c tcell.Color) error
	Print(r rune) error
	Flush() error
}

// toCoord narrows a grid position to the addressable terminal range
func toCoord(col, row int) (uint16, uint16, error) {
	if col < 0 || col > math.MaxUint16 || row < 0 || row > math.MaxUint16 {
		return 0, 0, errors.Wrapf(ErrCoordinateRange, "cell at (%d, %d)", col, row)
	}
	return uint16(col), uint16(row), nil
}

// displayGlyph maps glyphs that do not occupy exactly one column to a blank
// Control bytes from the input would otherwise move the cursor or scroll
func displayGlyph(r rune) rune {
	if runewidth.RuneWidth(r) != 1 {
		return parameter.BlankGlyph
	}
	return r
}
