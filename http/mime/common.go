package mime

import (
	"strings"

	"github.com/indigo-web/body/internal/strutil"
)

type MIME = string

const (
	Plain          MIME = "text/plain"
	JSON           MIME = "application/json"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
)

// Parse returns the media type of a Content-Type header value, stripped of parameters and
// surrounding whitespace and lower-cased, as media types are case-insensitive (RFC 9110, 8.3.1).
func Parse(contentType string) MIME {
	value, _ := strutil.CutHeader(contentType)
	value = strutil.StripWS(value)

	for i := 0; i < len(value); i++ {
		if c := value[i]; 'A' <= c && c <= 'Z' {
			return strings.ToLower(value)
		}
	}

	return value
}
