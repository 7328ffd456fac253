package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// EmergencyReset restores attributes and cursor after a crash
// Best-effort; errors ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write([]byte("\r\n"))

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
