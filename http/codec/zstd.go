package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewZSTD returns the zstd coding (RFC 8878). It isn't included into Default, so must be
// added explicitly.
func NewZSTD() Codec {
	return newBaseCodec("zstd", func(source io.Reader) (io.ReadCloser, error) {
		// a single request is decoded sequentially, there's no reason to spawn
		// additional goroutines
		decoder, err := zstd.NewReader(source, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}

		return decoder.IOReadCloser(), nil
	})
}
