package body

import (
	"io"
)

// Request is an incoming request as seen by the Parser. It's implemented by the host (see
// the adapter packages), and the Parser never modifies it: it only reads the body stream.
type Request interface {
	// Method returns the request method exactly as received. An empty method is treated as GET.
	Method() string
	// Closed reports whether the body stream can't be read anymore, as it was either aborted,
	// completely consumed or destroyed.
	Closed() bool
	// ContentType returns the raw Content-Type header value.
	ContentType() string
	// ContentEncoding returns the codings in the order they're listed in the Content-Encoding
	// header, trimmed.
	ContentEncoding() []string
	// Body returns the raw body stream. It's never closed by the Parser.
	Body() io.Reader
}
