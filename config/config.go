package config

import (
	"github.com/indigo-web/body/http/codec"
)

type (
	BodyForm struct {
		// EntriesPrealloc is the number of preallocated seats for form.Form in body entity.
		EntriesPrealloc int
	}

	BodyJSON struct {
		// UseNumber makes JSON numbers decoded as json.Number instead of float64, so big
		// integers don't lose their precision.
		UseNumber bool `test:"nullable"`
	}
)

type (
	Headers struct {
		// MaxEncodingTokens is a limit of how many encodings can be applied at the body
		// in a single request. Exceeding it is treated the same way as an unsupported encoding.
		MaxEncodingTokens int
	}

	Body struct {
		// BufferPrealloc is the initial capacity of a buffer storing a whole decoded body, as its
		// length is almost never known in advance.
		BufferPrealloc int
		// MaxBuffersPooled limits the capacity of a buffer, which can be returned to the pool.
		// Bigger buffers are left for the garbage collector, so a single huge request doesn't
		// pin its memory forever.
		MaxBuffersPooled int
		// Codings are content codings to be recognized in the Content-Encoding header. In case
		// gzip is presented, x-gzip is added implicitly.
		Codings []codec.Codec
		Form    BodyForm
		JSON    BodyJSON
	}
)

// Config holds settings used across various parts of the parser, mainly restrictions, limitations
// and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Body    Body
}

// Default returns default config. Those are initially well-balanced.
func Default() *Config {
	return &Config{
		Headers: Headers{
			// most of the real world requests carry a single coding. Anything beyond this
			// is rather a zip bomb attempt
			MaxEncodingTokens: 8,
		},
		Body: Body{
			BufferPrealloc:   1024,
			MaxBuffersPooled: 64 * 1024,
			Codings:          codec.Default(),
			Form: BodyForm{
				EntriesPrealloc: 8,
			},
		},
	}
}
