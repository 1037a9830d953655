// Package compresstest produces encoded payloads for tests.
package compresstest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Encode applies a single coding to the data. Unknown tokens cause a panic.
func Encode(data []byte, token string) []byte {
	var buff bytes.Buffer
	w := writer(&buff, token)

	if _, err := w.Write(data); err != nil {
		panic(err)
	}

	if err := w.Close(); err != nil {
		panic(err)
	}

	return buff.Bytes()
}

// Chain applies the codings in the same order as they'd be listed in the Content-Encoding
// header, so the first token is applied first.
func Chain(data []byte, tokens ...string) []byte {
	for _, token := range tokens {
		data = Encode(data, token)
	}

	return data
}

func writer(dst io.Writer, token string) io.WriteCloser {
	switch token {
	case "gzip", "x-gzip":
		return gzip.NewWriter(dst)
	case "deflate":
		return zlib.NewWriter(dst)
	case "br":
		return brotli.NewWriter(dst)
	case "zstd":
		w, err := zstd.NewWriter(dst)
		if err != nil {
			panic(err)
		}

		return w
	case "x-snappy-framed":
		return snappy.NewBufferedWriter(dst)
	default:
		panic(fmt.Sprintf("compresstest: unknown coding %q", token))
	}
}
