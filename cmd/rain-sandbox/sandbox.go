package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/tomatrix/parameter/visual"
	"github.com/lixenwraith/tomatrix/rain"
	"github.com/lixenwraith/tomatrix/render"
)

// sandbox drives a rain engine on a tcell screen with live controls
type sandbox struct {
	screen  tcell.Screen
	surface *render.Screen
	corpus  rain.Corpus
	rng     rain.Rand
	sleep   func(time.Duration)
	engine  *rain.Engine

	paused     bool
	showStatus bool
	quit       bool
}

func newSandbox(s tcell.Screen, corpus rain.Corpus, rng rain.Rand) *sandbox {
	sb := &sandbox{
		screen:     s,
		surface:    render.NewScreen(s),
		corpus:     corpus,
		rng:        rng,
		sleep:      time.Sleep,
		showStatus: true,
	}
	sb.reset()
	return sb
}

// reset starts a fresh engine sized to the screen and wipes the trails
func (sb *sandbox) reset() {
	w, h := sb.screen.Size()
	sb.engine = rain.NewEngine(rain.Grid{Columns: w, Rows: h}, sb.corpus,
		rain.WithRand(sb.rng),
		rain.WithSleep(func(d time.Duration) { sb.sleep(d) }),
		rain.WithLogger(log.Logger),
	)
	sb.surface.Clear()
	log.Debug().Int("columns", w).Int("rows", h).Msg("engine reset")
}

func (sb *sandbox) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		sb.screen.Sync()
		sb.reset()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			sb.quit = true
		case ev.Key() != tcell.KeyRune:
		case ev.Rune() == 'q':
			sb.quit = true
		case ev.Rune() == ' ':
			sb.paused = !sb.paused
		case ev.Rune() == 'c':
			sb.surface.Clear()
		case ev.Rune() == 's':
			sb.showStatus = !sb.showStatus
			if !sb.showStatus {
				sb.surface.ClearStatus()
			}
		}
	}

	if sb.showStatus {
		sb.surface.DrawStatus(sb.status(), visual.StatusForeground, visual.StatusBackground)
	}
}

// step runs one frame unless paused
func (sb *sandbox) step() error {
	if sb.paused {
		return nil
	}
	if err := sb.engine.Frame(sb.surface); err != nil {
		return err
	}
	if sb.showStatus {
		sb.surface.DrawStatus(sb.status(), visual.StatusForeground, visual.StatusBackground)
	}
	return nil
}

func (sb *sandbox) status() string {
	st := sb.engine.Stats()
	g := sb.engine.Grid()
	state := "running"
	if sb.paused {
		state = "paused"
	}
	return fmt.Sprintf(" %s  frame %d  live %d  spawned %d  died %d  %dx%d  [space] pause [c] clear [s] status [q] quit",
		state, st.Frames, st.Live, st.Spawned, st.Died, g.Columns, g.Rows)
}

// run alternates input handling and frames until quit or a frame fails
func (sb *sandbox) run(interval time.Duration) error {
	events := make(chan tcell.Event, 64)
	quitCh := make(chan struct{})
	go sb.screen.ChannelEvents(events, quitCh)
	defer close(quitCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !sb.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			sb.handleEvent(ev)
		case <-ticker.C:
			if err := sb.step(); err != nil {
				return err
			}
		}
	}
	return nil
}
