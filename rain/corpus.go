package rain

import (
	"io"

	"github.com/pkg/errors"
)

// ErrEmptyCorpus is returned when the input stream carries no bytes
var ErrEmptyCorpus = errors.New("corpus is empty")

// Corpus is the ordered glyph pool, shared read-only by all cells
type Corpus []rune

// DefaultCorpus is used when no input stream is available
var DefaultCorpus = Corpus("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"ｦｧｨｩｪｫｬｭｮｯｰｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ")

// LoadCorpus consumes r to EOF and widens each byte to one rune
func LoadCorpus(r io.Reader) (Corpus, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read corpus")
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCorpus
	}

	c := make(Corpus, len(raw))
	for i, b := range raw {
		c[i] = rune(b)
	}
	return c, nil
}
