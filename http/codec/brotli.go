package codec

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

func NewBrotli() Codec {
	return newBaseCodec("br", func(source io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(newBrotliReader(source)), nil
	})
}

// brotli.Reader returns the source's io.EOF as is whenever its input is exhausted, so
// a stream cut at a meta-block boundary looks just like a complete one. Only a decoder
// that reached the last meta-block rejects more input, and that's what the check byte
// fed after the actual end of the source is for.
const brotliExcessiveInput = "brotli: excessive input"

type brotliReader struct {
	source  *checkedSource
	decoder *brotli.Reader
	err     error
}

func newBrotliReader(source io.Reader) *brotliReader {
	checked := &checkedSource{Reader: source}

	return &brotliReader{
		source:  checked,
		decoder: brotli.NewReader(checked),
	}
}

func (b *brotliReader) Read(p []byte) (n int, err error) {
	if b.err != nil {
		return 0, b.err
	}

	n, err = b.decoder.Read(p)
	if err == io.EOF {
		err = b.complete()
	}

	b.err = err
	return n, err
}

// complete reports io.EOF if the stream was properly terminated and io.ErrUnexpectedEOF
// otherwise.
func (b *brotliReader) complete() error {
	// 0x11 can't even start a stream, as it encodes an invalid window size
	b.source.Reader = bytes.NewReader([]byte{0x11})

	var scratch [1]byte
	if _, err := b.decoder.Read(scratch[:]); err != nil && err.Error() == brotliExcessiveInput {
		return io.EOF
	}

	return io.ErrUnexpectedEOF
}

type checkedSource struct {
	io.Reader
}
