package strutil

import (
	"iter"
	"strings"
)

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// CutHeader behaves exactly as strings.Cut by the first semicolon, but strips whitespaces
// between the separator and the first-encountered parameter in addition.
func CutHeader(header string) (value, params string) {
	sep := strings.IndexByte(header, ';')
	if sep == -1 {
		return header, ""
	}

	return header[:sep], LStripWS(header[sep+1:])
}

// WalkList iterates over elements of a comma-separated header list (RFC 9110, 5.6.1),
// yielding them trimmed and in their original order. Empty elements are skipped, as the
// grammar allows them.
func WalkList(values ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, value := range values {
			for len(value) > 0 {
				var element string
				comma := strings.IndexByte(value, ',')
				if comma == -1 {
					element, value = value, ""
				} else {
					element, value = value[:comma], value[comma+1:]
				}

				if element = StripWS(element); len(element) == 0 {
					continue
				}

				if !yield(element) {
					return
				}
			}
		}
	}
}
