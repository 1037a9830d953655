package codec

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// NewDeflate returns the deflate coding, which is, despite the name, the zlib data format
// (RFC 1950) wrapping a deflate stream (RFC 9110, 8.4.1.2).
func NewDeflate() Codec {
	return newBaseCodec("deflate", func(source io.Reader) (io.ReadCloser, error) {
		return zlib.NewReader(source)
	})
}
