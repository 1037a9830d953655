package body

import (
	"errors"
	"strconv"
	"strings"

	"github.com/indigo-web/body/http/status"
	"github.com/indigo-web/body/internal/decoding"
)

// ErrorKind classifies failures of the Parser.
type ErrorKind uint8

const (
	// UnsupportedEncoding means the request lists a coding nobody can undo, or too many of
	// them. Nothing was read from the body.
	UnsupportedEncoding ErrorKind = iota + 1
	// Decompression means one of the codings failed to be undone: the data is either corrupted,
	// truncated or has something after its end.
	Decompression
	// BodyMismatch means the decoded body doesn't conform to its Content-Type.
	BodyMismatch
	// Aborted means the body stream failed or the context was done before the body was read.
	// It's answered just like Decompression, as the body is unusable either way.
	Aborted
	// Configuration means the Parser can't be built with the given settings.
	Configuration
)

func (e ErrorKind) String() string {
	switch e {
	case UnsupportedEncoding:
		return "unsupported encoding"
	case Decompression:
		return "decompression"
	case BodyMismatch:
		return "body mismatch"
	case Aborted:
		return "aborted"
	case Configuration:
		return "configuration"
	default:
		return "unknown"
	}
}

func (e ErrorKind) httpError() error {
	switch e {
	case UnsupportedEncoding:
		return status.ErrUnsupportedEncoding
	case Decompression:
		return status.ErrBadEncoding
	case BodyMismatch:
		return status.ErrBodyMismatch
	case Aborted:
		return status.ErrAborted
	default:
		return status.ErrInternalServerError
	}
}

// ErrNilJSONParser is the cause of the Configuration error, returned when WithJSON is given nil.
var ErrNilJSONParser = errors.New("JSON parse function is nil")

// Error is returned by the Parser in case the body is unusable. It unwraps both into the
// cause and into one of the status errors, so the host knows what to respond with:
// status.ErrUnsupportedEncoding, status.ErrBadEncoding, status.ErrAborted or
// status.ErrBodyMismatch, all of them being 415.
type Error struct {
	Kind ErrorKind
	// ContentType is the media type of the request, without parameters.
	ContentType string
	// Coding is the token of the coding, which caused the failure, exactly as it was
	// listed in the Content-Encoding header. Empty if the failure isn't specific to a coding.
	Coding string
	// Stage is the position of Coding in the Content-Encoding header, or -1.
	Stage int
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())

	if len(e.Coding) > 0 {
		b.WriteString(" (coding ")
		b.WriteString(strconv.Quote(e.Coding))
		b.WriteString(" #")
		b.WriteString(strconv.Itoa(e.Stage))
		b.WriteByte(')')
	}

	if cause := e.cause(); cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}

	return b.String()
}

// cause strips the coding label off Err, as it's already printed.
func (e *Error) cause() error {
	if len(e.Coding) == 0 {
		return e.Err
	}

	var stageErr *decoding.StageError
	if errors.As(e.Err, &stageErr) {
		return stageErr.Err
	}

	var unsupported *decoding.UnsupportedError
	if errors.As(e.Err, &unsupported) {
		return nil
	}

	return e.Err
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.httpError()}
	}

	return []error{e.Kind.httpError(), e.Err}
}

// StatusCode returns the code the host is expected to respond with.
func (e *Error) StatusCode() status.Code {
	return status.CodeOf(e.Kind.httpError())
}
