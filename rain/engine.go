package rain

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tomatrix/parameter"
	"github.com/lixenwraith/tomatrix/vmath"
)

// Stats are running counters since the engine was created
type Stats struct {
	Frames  uint64
	Live    int
	Spawned uint64
	Died    uint64
}

// Engine owns the live cell collection
// Single writer: Frame runs to completion before returning, no locking
type Engine struct {
	grid   Grid
	corpus Corpus
	cells  []Cell

	rng   Rand
	sleep func(time.Duration)
	log   zerolog.Logger

	stats Stats
}

// Option configures an Engine
type Option func(*Engine)

// WithRand replaces the clock-seeded xorshift source
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSleep replaces time.Sleep for the in-frame jitter
func WithSleep(fn func(time.Duration)) Option {
	return func(e *Engine) { e.sleep = fn }
}

// WithLogger attaches a logger for per-frame debug records
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine with no live cells
func NewEngine(grid Grid, corpus Corpus, opts ...Option) *Engine {
	e := &Engine{
		grid:   grid,
		corpus: corpus,
		rng:    vmath.NewClockRand(),
		sleep:  time.Sleep,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grid returns the grid the engine was created with
func (e *Engine) Grid() Grid {
	return e.grid
}

// Cells returns a copy of the live set in draw order
func (e *Engine) Cells() []Cell {
	out := make([]Cell, len(e.cells))
	copy(out, e.cells)
	return out
}

// Stats returns a snapshot of the counters
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Live = len(e.cells)
	return s
}

// Frame draws and advances every live cell, then spawns a new batch
//
// Per cell, in order: move, set foreground, print, update. Cells that die
// during the update are dropped. The live set is only replaced after the whole
// pass succeeded, so an error leaves the engine as it was.
func (e *Engine) Frame(s Surface) error {
	next := make([]Cell, 0, len(e.cells))
	var died int

	for _, c := range e.cells {
		col, row, err := toCoord(c.Column, c.Row)
		if err != nil {
			return err
		}

		if err := s.MoveTo(col, row); err != nil {
			return errors.Wrap(err, "move cursor")
		}
		if err := s.SetForeground(c.Color); err != nil {
			return errors.Wrap(err, "set foreground")
		}
		if err := s.Print(displayGlyph(c.Glyph)); err != nil {
			return errors.Wrap(err, "print glyph")
		}

		if c.Iterate(e.rng, e.corpus) {
			next = append(next, c)
		} else {
			died++
		}
	}

	if len(e.cells) > 0 {
		if err := s.Flush(); err != nil {
			return errors.Wrap(err, "flush frame")
		}
	}

	e.sleep(parameter.FrameJitterBase + time.Duration(e.rng.Intn(parameter.FrameJitterSpread)))

	born := Spawn(e.rng, e.grid, e.corpus)
	next = append(next, born...)
	e.cells = next

	e.stats.Frames++
	e.stats.Spawned += uint64(len(born))
	e.stats.Died += uint64(died)

	e.log.Debug().
		Uint64("frame", e.stats.Frames).
		Int("live", len(e.cells)).
		Int("spawned", len(born)).
		Int("died", died).
		Msg("frame")

	return nil
}
