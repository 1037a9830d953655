package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func NewGZIP() Codec {
	return newBaseCodec("gzip", func(source io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(source)
	})
}
