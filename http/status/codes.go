package status

import "strconv"

type Code uint16

// The subset of IANA codes the decoding stage and its adapters ever produce.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	UnsupportedMediaType Code = 415 // RFC 9110, 15.5.16
	InternalServerError  Code = 500 // RFC 9110, 15.6.1
)

// StringCode returns the decimal representation of the code, e.g. "415".
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
