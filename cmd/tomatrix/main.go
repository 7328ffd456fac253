// Command tomatrix rains the bytes of its standard input down the terminal.
//
//	fortune | tomatrix
//
// Set TOMATRIX_DEBUG=1 to write per-frame records to logs/tomatrix.log.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/tomatrix/logging"
	"github.com/lixenwraith/tomatrix/parameter"
	"github.com/lixenwraith/tomatrix/rain"
	"github.com/lixenwraith/tomatrix/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the engine crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTOMATRIX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tomatrix: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := logging.Setup(logging.DebugFromEnv())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if terminal.IsTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, "tomatrix: reading corpus from the terminal, finish with Ctrl-D")
	}

	corpus, err := rain.LoadCorpus(os.Stdin)
	if err != nil {
		return err
	}

	cols, rows, err := terminal.Size(os.Stdout)
	if err != nil {
		return err
	}

	colorMode := terminal.DetectColorMode()
	log.Info().
		Int("columns", cols).
		Int("rows", rows).
		Int("corpus", len(corpus)).
		Stringer("color", colorMode).
		Msg("starting")

	w := terminal.NewWriter(os.Stdout, colorMode)
	if err := w.Clear(); err != nil {
		return errors.Wrap(err, "clear screen")
	}
	if err := w.HideCursor(); err != nil {
		return errors.Wrap(err, "hide cursor")
	}
	defer w.Restore()

	engine := rain.NewEngine(rain.Grid{Columns: cols, Rows: rows}, corpus, rain.WithLogger(log.Logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop(ctx, engine, w, parameter.FrameInterval)
}

// loop runs frames until ctx is done or a frame fails
func loop(ctx context.Context, engine *rain.Engine, s rain.Surface, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		if err := engine.Frame(s); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			st := engine.Stats()
			log.Info().
				Uint64("frames", st.Frames).
				Uint64("spawned", st.Spawned).
				Uint64("died", st.Died).
				Msg("stopped")
			return nil
		case <-timer.C:
			timer.Reset(interval)
		}
	}
}
