package codec

import (
	"errors"
	"fmt"

	"github.com/indigo-web/utils/strcomp"
)

var (
	ErrNilCodec       = errors.New("codec is nil")
	ErrEmptyToken     = errors.New("codec has an empty token")
	ErrDuplicateToken = errors.New("codec token is registered more than once")
)

// Table is a lookup of codecs by their tokens. As there usually aren't many codings, a linear
// search over a slice is the cheapest way.
type Table struct {
	codecs []Codec
}

// NewTable validates the codecs and builds a table from them. In case gzip is presented and
// x-gzip isn't, the latter is added as an alias.
func NewTable(codecs ...Codec) (Table, error) {
	t := Table{codecs: make([]Codec, 0, len(codecs)+1)}

	for _, c := range codecs {
		if c == nil {
			return Table{}, ErrNilCodec
		}

		if len(c.Token()) == 0 {
			return Table{}, ErrEmptyToken
		}

		if _, found := t.Get(c.Token()); found {
			return Table{}, fmt.Errorf("%w: %s", ErrDuplicateToken, c.Token())
		}

		t.codecs = append(t.codecs, c)
	}

	if gz, found := t.Get("gzip"); found {
		if _, found = t.Get("x-gzip"); !found {
			t.codecs = append(t.codecs, Alias("x-gzip", gz))
		}
	}

	return t, nil
}

// Get returns a codec by its token. Tokens are case-insensitive.
func (t Table) Get(token string) (Codec, bool) {
	for _, c := range t.codecs {
		if strcomp.EqualFold(c.Token(), token) {
			return c, true
		}
	}

	return nil, false
}

// Tokens returns all the registered tokens in their registration order.
func (t Table) Tokens() []string {
	tokens := make([]string, len(t.codecs))
	for i, c := range t.codecs {
		tokens[i] = c.Token()
	}

	return tokens
}
