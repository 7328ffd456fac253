package rain

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestLoadCorpusWidensBytes(t *testing.T) {
	c, err := LoadCorpus(bytes.NewReader([]byte{'A', 'B', ' ', 0xff, '\n'}))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	want := Corpus{'A', 'B', ' ', 'ÿ', '\n'}
	if string(c) != string(want) {
		t.Errorf("LoadCorpus = %q, want %q", string(c), string(want))
	}
}

func TestLoadCorpusOneRunePerByte(t *testing.T) {
	// Multi-byte UTF-8 is not decoded
	in := "ｱ"
	c, err := LoadCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(c) != len(in) {
		t.Errorf("len = %d, want %d", len(c), len(in))
	}
}

func TestLoadCorpusEmpty(t *testing.T) {
	_, err := LoadCorpus(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestLoadCorpusReadError(t *testing.T) {
	_, err := LoadCorpus(failReader{})
	if err == nil {
		t.Fatal("Expected read error")
	}
	if !strings.Contains(err.Error(), "read corpus") {
		t.Errorf("Error %q should mention the read", err)
	}
}

func TestDisplayGlyph(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'A', 'A'},
		{' ', ' '},
		{'ｱ', 'ｱ'},
		{'\n', ' '},
		{'\t', ' '},
		{0x1b, ' '},
		{0x85, ' '},
	}

	for _, tt := range tests {
		if got := displayGlyph(tt.in); got != tt.want {
			t.Errorf("displayGlyph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultCorpusPrintable(t *testing.T) {
	for _, r := range DefaultCorpus {
		if displayGlyph(r) != r {
			t.Errorf("DefaultCorpus glyph %q is not single-column", r)
		}
	}
}
