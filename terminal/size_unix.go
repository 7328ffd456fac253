//go:build unix

package terminal

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size returns the grid of the terminal behind f
// When f is redirected the controlling tty is asked instead
func Size(f *os.File) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row), nil
	}

	tty, terr := os.Open("/dev/tty")
	if terr != nil {
		if err == nil {
			err = terr
		}
		return 0, 0, errors.Wrap(err, "query terminal size")
	}
	defer tty.Close()

	w, h, err := term.GetSize(int(tty.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "query terminal size")
	}
	return w, h, nil
}
