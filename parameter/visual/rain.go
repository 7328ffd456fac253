package visual

import (
	"github.com/gdamore/tcell/v2"
)

// RainPalette is the glyph brightness falloff, xterm base indices 8, 2, 10, 7, 15
// Palette entries (not RGB) so 256-color terminals render them with their own theme
var RainPalette = [5]tcell.Color{
	tcell.ColorGray,   // Dark grey
	tcell.ColorGreen,  // Dark green
	tcell.ColorLime,   // Green
	tcell.ColorSilver, // Grey
	tcell.ColorWhite,  // White
}

// Sandbox status line
var (
	StatusForeground = tcell.ColorBlack
	StatusBackground = tcell.ColorLime
)
