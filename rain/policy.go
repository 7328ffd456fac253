package rain

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tomatrix/parameter"
	"github.com/lixenwraith/tomatrix/parameter/visual"
)

// PickSpeed returns rows per settle in [0, MaxSpeed)
func PickSpeed(r Rand) int {
	return r.Intn(parameter.MaxSpeed)
}

// PickColor returns a uniform palette entry
func PickColor(r Rand) tcell.Color {
	return visual.RainPalette[r.Intn(len(visual.RainPalette))]
}

// PickChar returns a blank one time in BlankOdds, otherwise a uniform corpus glyph
// An empty corpus always yields a blank
func PickChar(r Rand, c Corpus) rune {
	if r.Intn(parameter.BlankOdds) == 0 || len(c) == 0 {
		return parameter.BlankGlyph
	}
	return c[r.Intn(len(c))]
}

// PickVolatility returns the freeze threshold in [0,1)
func PickVolatility(r Rand) float64 {
	return r.Float64()
}
