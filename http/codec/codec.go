package codec

import (
	"io"
)

// Codec is a content coding, which can be undone while streaming.
type Codec interface {
	// Token returns a coding token associated with the codec itself.
	Token() string
	// NewDecoder wraps the source into a decompressing reader. It may read from the source
	// in order to validate the stream header. Closing the decoder must release its own
	// resources only, the source is never closed.
	NewDecoder(source io.Reader) (io.ReadCloser, error)
}

type decoderFactory = func(source io.Reader) (io.ReadCloser, error)

var _ Codec = baseCodec{}

type baseCodec struct {
	token      string
	newDecoder decoderFactory
}

func newBaseCodec(token string, newDecoder decoderFactory) baseCodec {
	return baseCodec{
		token:      token,
		newDecoder: newDecoder,
	}
}

func (b baseCodec) Token() string {
	return b.token
}

func (b baseCodec) NewDecoder(source io.Reader) (io.ReadCloser, error) {
	return b.newDecoder(source)
}

// Alias returns the same codec, but available by a different token. This exists mostly in
// backward-capability purposes, as some old clients may use x-gzip instead of gzip.
func Alias(token string, c Codec) Codec {
	return newBaseCodec(token, c.NewDecoder)
}

// Default returns the codings a decoder understands out of the box: gzip (together with
// its x-gzip alias, implicitly added by the table), deflate and br.
func Default() []Codec {
	return []Codec{NewGZIP(), NewDeflate(), NewBrotli()}
}
