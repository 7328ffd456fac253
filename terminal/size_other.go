//go:build !unix

package terminal

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Size returns the grid of the terminal behind f
func Size(f *os.File) (int, int, error) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "query terminal size")
	}
	return w, h, nil
}
