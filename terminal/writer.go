package terminal

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Writer emits rain draw calls as ANSI sequences
// Output is buffered until Flush; write errors surface on the next call
type Writer struct {
	w         *bufio.Writer
	colorMode ColorMode

	// Style state for coalescing
	lastFg    tcell.Color
	lastValid bool
}

// NewWriter wraps out with a 64KB buffer
func NewWriter(out io.Writer, colorMode ColorMode) *Writer {
	return &Writer{
		w:         bufio.NewWriterSize(out, 65536),
		colorMode: colorMode,
	}
}

// ColorMode returns the mode RGB colors are encoded for
func (t *Writer) ColorMode() ColorMode {
	return t.colorMode
}

// MoveTo positions the cursor (0-indexed)
func (t *Writer) MoveTo(col, row uint16) error {
	return writeCursorPos(t.w, int(col), int(row))
}

// SetForeground switches the foreground color, skipped when unchanged
//
// Palette entries 0-15 use the basic SGR codes so the terminal theme applies,
// 16-255 use 38;5. RGB colors use 38;2 in truecolor mode and the nearest
// palette index otherwise.
func (t *Writer) SetForeground(c tcell.Color) error {
	if t.lastValid && c == t.lastFg {
		return nil
	}

	var err error
	switch {
	case !c.Valid():
		_, err = t.w.Write(csiDefaultFg)
	case c.IsRGB():
		r, g, b := c.RGB()
		if t.colorMode == ColorModeTrueColor {
			t.w.Write(csiFgRGB)
			writeInt(t.w, int(r))
			t.w.WriteByte(';')
			writeInt(t.w, int(g))
			t.w.WriteByte(';')
			writeInt(t.w, int(b))
			err = t.w.WriteByte('m')
		} else {
			t.w.Write(csiFg256)
			writeInt(t.w, int(RGBTo256(uint8(r), uint8(g), uint8(b))))
			err = t.w.WriteByte('m')
		}
	default:
		idx := int(c - tcell.ColorValid)
		switch {
		case idx < 8:
			err = writeSGR(t.w, 30+idx)
		case idx < 16:
			err = writeSGR(t.w, 90+idx-8)
		default:
			t.w.Write(csiFg256)
			writeInt(t.w, idx&0xff)
			err = t.w.WriteByte('m')
		}
	}
	if err != nil {
		return err
	}

	t.lastFg = c
	t.lastValid = true
	return nil
}

// Print writes one glyph at the cursor
func (t *Writer) Print(r rune) error {
	if r < 0x80 {
		return t.w.WriteByte(byte(r))
	}
	_, err := t.w.WriteRune(r)
	return err
}

// Flush pushes buffered output to the terminal
func (t *Writer) Flush() error {
	return t.w.Flush()
}

// Clear resets attributes and erases the whole screen, cursor to home
func (t *Writer) Clear() error {
	t.w.Write(csiSGR0)
	t.w.Write(csiClear)
	t.lastValid = false
	return t.w.Flush()
}

// HideCursor hides the cursor until Restore
func (t *Writer) HideCursor() error {
	t.w.Write(csiCursorHide)
	return t.w.Flush()
}

// Restore resets attributes and shows the cursor
func (t *Writer) Restore() error {
	t.w.Write(csiSGR0)
	t.w.Write(csiCursorShow)
	t.lastValid = false
	return t.w.Flush()
}
