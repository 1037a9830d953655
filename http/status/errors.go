package status

// HTTPError is an error carrying the status code the host is expected to respond with.
// Values are comparable, so errors.Is matches predeclared errors below.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrUnsupportedEncoding = NewError(UnsupportedMediaType, "encoding is not supported")
	ErrBadEncoding         = NewError(UnsupportedMediaType, "malformed encoded body")
	// ErrAborted is distinct from ErrBadEncoding only for those who log it: the body couldn't
	// be decoded either way.
	ErrAborted             = NewError(UnsupportedMediaType, "request body stream was aborted")
	ErrBodyMismatch        = NewError(UnsupportedMediaType, "body does not match its content type")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)

// CodeOf returns the status code carried by err, or InternalServerError if there's none.
func CodeOf(err error) Code {
	type coder interface {
		StatusCode() Code
	}

	switch e := err.(type) {
	case HTTPError:
		return e.Code
	case coder:
		return e.StatusCode()
	default:
		return InternalServerError
	}
}
