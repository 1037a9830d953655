package decoding

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTooManyCodings is returned when the Content-Encoding header lists more codings
	// than allowed.
	ErrTooManyCodings = errors.New("too many content codings")
	// ErrTrailingData is reported by a stage whose input didn't end together with the coded stream.
	ErrTrailingData = errors.New("trailing data after the end of the coded stream")
)

// UnsupportedError reports a coding token, for which no codec is registered.
type UnsupportedError struct {
	Token string
	// Index is the position of the token in the Content-Encoding header.
	Index int
}

func (u *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported content coding %q at position %d", u.Token, u.Index)
}

// StageError is a failure of a single decoding stage. The Token and Index refer to the
// coding as it was listed in the Content-Encoding header.
type StageError struct {
	Token string
	Index int
	Err   error
}

func (s *StageError) Error() string {
	return fmt.Sprintf("%s (coding #%d): %s", s.Token, s.Index, s.Err)
}

func (s *StageError) Unwrap() error {
	return s.Err
}

// SourceError is a failure of reading the raw request stream, including the context
// cancellation.
type SourceError struct {
	Err error
}

func (s *SourceError) Error() string {
	return "reading request body: " + s.Err.Error()
}

func (s *SourceError) Unwrap() error {
	return s.Err
}

// label attributes the error to the stage, unless it's already attributed to anyone. This
// keeps the very first failure of the pipeline as is, regardless of how many stages it
// passed through.
func (s Stage) label(err error) error {
	var (
		stageErr  *StageError
		sourceErr *SourceError
	)

	if errors.As(err, &stageErr) || errors.As(err, &sourceErr) {
		return err
	}

	if err == io.EOF {
		// the stage is still in the middle of its stream, so EOF at this point
		// may only mean a truncated input
		err = io.ErrUnexpectedEOF
	}

	return &StageError{
		Token: s.Token,
		Index: s.Index,
		Err:   err,
	}
}
