package rain

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// scriptRand replays fixed draws; exhausted queues yield zero
type scriptRand struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted Intn(%d) = %d, out of range", n, v)
	}
	return v
}

func (s *scriptRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// recordSurface logs draw calls as strings
type recordSurface struct {
	calls []string
	err   error // Returned from Print when set
}

func (r *recordSurface) MoveTo(col, row uint16) error {
	r.calls = append(r.calls, fmt.Sprintf("move %d,%d", col, row))
	return nil
}

func (r *recordSurface) SetForeground(c tcell.Color) error {
	r.calls = append(r.calls, fmt.Sprintf("fg %d", uint64(c)))
	return nil
}

func (r *recordSurface) Print(ch rune) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, fmt.Sprintf("print %q", ch))
	return nil
}

func (r *recordSurface) Flush() error {
	r.calls = append(r.calls, "flush")
	return nil
}

func noSleep(time.Duration) {}
