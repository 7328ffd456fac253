// Command rain-sandbox runs the rain engine on a tcell screen with live controls.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/tomatrix/logging"
	"github.com/lixenwraith/tomatrix/parameter"
	"github.com/lixenwraith/tomatrix/rain"
	"github.com/lixenwraith/tomatrix/terminal"
	"github.com/lixenwraith/tomatrix/vmath"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write debug records to logs/tomatrix.log")
	intervalFlag = flag.Duration("interval", parameter.FrameInterval, "Sleep between frames")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()

	logFile, err := logging.Setup(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Piped input feeds the corpus, an interactive stdin would block until EOF
	corpus := rain.DefaultCorpus
	if !terminal.IsTerminal(os.Stdin) {
		corpus, err = rain.LoadCorpus(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "corpus: %v\n", err)
			os.Exit(1)
		}
	}

	var rng rain.Rand = vmath.NewClockRand()
	if *seedFlag != 0 {
		rng = vmath.NewFastRand(*seedFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: tcell restores the tty in Fini
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	sb := newSandbox(screen, corpus, rng)
	log.Info().Int("corpus", len(corpus)).Dur("interval", *intervalFlag).Msg("sandbox started")

	runErr := sb.run(*intervalFlag)
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "rain-sandbox: %v\n", runErr)
		os.Exit(1)
	}
}
