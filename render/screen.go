package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen adapts a tcell.Screen to the rain draw calls.
// Print advances the cursor one column, the way a terminal does.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		style:  tcell.StyleDefault,
	}
}

// Size returns screen dimensions.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// MoveTo positions the virtual cursor.
func (s *Screen) MoveTo(col, row uint16) error {
	s.x, s.y = int(col), int(row)
	return nil
}

// SetForeground changes the foreground of subsequent prints.
func (s *Screen) SetForeground(c tcell.Color) error {
	s.style = s.style.Foreground(c)
	return nil
}

// Print places r at the cursor. Out of bounds writes are dropped by tcell.
func (s *Screen) Print(r rune) error {
	s.screen.SetContent(s.x, s.y, r, nil, s.style)
	s.x++
	return nil
}

// Flush makes the frame visible.
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

// Clear erases every glyph, trails included.
func (s *Screen) Clear() {
	s.screen.Clear()
	s.screen.Show()
}

// DrawStatus fills the bottom row with text, padded to the screen width.
// Rain cells never reach the bottom row so the line is not overdrawn.
func (s *Screen) DrawStatus(text string, fg, bg tcell.Color) {
	w, h := s.screen.Size()
	if h == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)

	x := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		s.screen.SetContent(x, h-1, r, nil, style)
		x += rw
	}
	for ; x < w; x++ {
		s.screen.SetContent(x, h-1, ' ', nil, style)
	}
	s.screen.Show()
}

// ClearStatus blanks the bottom row.
func (s *Screen) ClearStatus() {
	w, h := s.screen.Size()
	if h == 0 {
		return
	}
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, h-1, ' ', nil, tcell.StyleDefault)
	}
	s.screen.Show()
}
