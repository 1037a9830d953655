package codec

import (
	"io"

	"github.com/golang/snappy"
)

// NewSnappy returns the snappy framing format coding. The token isn't registered by IANA,
// so the codec isn't included into Default and must be added explicitly.
func NewSnappy() Codec {
	return newBaseCodec("x-snappy-framed", func(source io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(snappy.NewReader(source)), nil
	})
}
