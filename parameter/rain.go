package parameter

import "time"

// Driver & Engine Timing
const (
	// FrameInterval is the fixed sleep of the outer driver between frames
	FrameInterval = 100 * time.Millisecond

	// FrameJitterBase is the minimum in-frame sleep that desyncs glyph refresh from the driver cadence
	FrameJitterBase = 10 * time.Millisecond

	// FrameJitterSpread is the exclusive upper bound of random nanoseconds added to FrameJitterBase
	FrameJitterSpread = 100000
)

// Cell Policy
const (
	// MaxSpeed is the exclusive upper bound of rows a cell advances per settle
	MaxSpeed = 4

	// BlankOdds: one in BlankOdds glyph picks yields a space
	BlankOdds = 3

	// MutateOdds: one in MutateOdds settles replaces the glyph
	MutateOdds = 10

	// SpawnColumnsPerCell divides grid width into the exclusive upper bound of a spawn batch
	SpawnColumnsPerCell = 10
)

// BlankGlyph is printed for blank picks and for glyphs the terminal cannot place in one column
const BlankGlyph = ' '
