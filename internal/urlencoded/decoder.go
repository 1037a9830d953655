package urlencoded

import (
	"github.com/indigo-web/body/internal/hexconv"
)

// Decode percent-decodes src into dst and additionally decodes + as spaces, as
// application/x-www-form-urlencoded prescribes. It is permissive: a percent sign not
// followed by two hex digits is left as is, so there is no error to report.
//
// In case src contains nothing to be decoded, it is returned as is and dst stays untouched.
// Otherwise, decoded bytes are appended to dst and decoded is the tail of the returned
// buffer. Bytes previously appended to dst are never modified, therefore it is safe to
// share the buffer among multiple calls as long as slices of it are kept read-only.
func Decode(src, dst []byte) (decoded, buffer []byte) {
	if !needsDecoding(src) {
		return src, dst
	}

	dsthead := len(dst)

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '+':
			dst = append(dst, ' ')
		case '%':
			if len(src)-i < 3 {
				dst = append(dst, c)
				continue
			}

			a, b := hexconv.Halfbyte[src[i+1]], hexconv.Halfbyte[src[i+2]]
			if a|b > 0x0f {
				dst = append(dst, c)
				continue
			}

			dst = append(dst, (a<<4)|b)
			i += 2
		default:
			dst = append(dst, c)
		}
	}

	return dst[dsthead:], dst
}

func needsDecoding(src []byte) bool {
	for _, c := range src {
		if c == '%' || c == '+' {
			return true
		}
	}

	return false
}
