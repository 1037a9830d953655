package formdata

import (
	"bytes"

	"github.com/indigo-web/body/http/form"
	"github.com/indigo-web/body/internal/urlencoded"
	"github.com/indigo-web/utils/uf"
)

// ParseURLEncoded parses data as an application/x-www-form-urlencoded body, following
// the WHATWG URL standard: empty sequences are skipped, a sequence without = is a name
// with an empty value, both names and values are percent-decoded with + treated as a
// space. The parser never fails, malformed percent-sequences are kept literally.
//
// Names and values either point into data or into buff (which is returned, grown, for
// reuse), so both must stay untouched as long as the returned form is in use.
func ParseURLEncoded(into form.Form, data, buff []byte) (form.Form, []byte) {
	for len(data) > 0 {
		var sequence []byte
		amp := bytes.IndexByte(data, '&')
		if amp == -1 {
			sequence, data = data, nil
		} else {
			sequence, data = data[:amp], data[amp+1:]
		}

		if len(sequence) == 0 {
			continue
		}

		name, value := sequence, []byte(nil)
		if eq := bytes.IndexByte(sequence, '='); eq != -1 {
			name, value = sequence[:eq], sequence[eq+1:]
		}

		name, buff = urlencoded.Decode(name, buff)
		value, buff = urlencoded.Decode(value, buff)
		into = append(into, form.Data{
			Name:  uf.B2S(name),
			Value: uf.B2S(value),
		})
	}

	return into, buff
}
