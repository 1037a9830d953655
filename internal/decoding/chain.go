// Package decoding builds and runs chains of content codings, undoing them in the reverse
// order to how they were applied.
package decoding

import (
	"fmt"

	"github.com/indigo-web/body/http/codec"
)

// Stage is a single decompressing step of the chain.
type Stage struct {
	// Token is the coding token exactly as it was listed by the client.
	Token string
	// Index is the position of the token in the Content-Encoding header.
	Index int
	Codec codec.Codec
}

// Chain is an ordered list of stages. The first stage reads the raw stream, each next one
// reads the output of its predecessor.
type Chain []Stage

// Build maps the tokens, listed in the Content-Encoding order, into a chain. As codings
// are listed in the order they were applied, the last one must be undone first. No partial
// chain is ever returned: a single unknown token fails the whole build.
func Build(table codec.Table, tokens []string, maxTokens int) (Chain, error) {
	if len(tokens) > maxTokens {
		return nil, fmt.Errorf("%w: %d (at most %d allowed)", ErrTooManyCodings, len(tokens), maxTokens)
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	chain := make(Chain, len(tokens))
	for i, token := range tokens {
		c, found := table.Get(token)
		if !found {
			return nil, &UnsupportedError{Token: token, Index: i}
		}

		chain[len(tokens)-1-i] = Stage{
			Token: token,
			Index: i,
			Codec: c,
		}
	}

	return chain, nil
}

// Tokens returns the tokens of the chain in the order they're listed in the header.
func (c Chain) Tokens() []string {
	tokens := make([]string, len(c))
	for _, stage := range c {
		tokens[stage.Index] = stage.Token
	}

	return tokens
}
