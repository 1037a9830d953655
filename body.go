// Package body implements the request body ingestion stage: it decides whether a body must
// be read at all, undoes the content codings it was sent with and parses the result
// accordingly to its Content-Type.
package body

import (
	"github.com/indigo-web/body/http/form"
	"github.com/indigo-web/body/http/mime"
)

// Kind is the way a body is interpreted, derived from its Content-Type.
type Kind uint8

const (
	// KindNone means the body isn't interpreted at all.
	KindNone Kind = iota
	KindJSON
	KindForm
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindForm:
		return "form"
	case KindText:
		return "text"
	default:
		return "none"
	}
}

func kindOf(contentType mime.MIME) Kind {
	switch contentType {
	case mime.JSON:
		return KindJSON
	case mime.FormUrlencoded:
		return KindForm
	case mime.Plain:
		return KindText
	default:
		return KindNone
	}
}

// Body is a parsed request body. It's always one of JSON, Form or Text.
type Body interface {
	Kind() Kind
	body()
}

// JSON is a body of application/json type. Value holds whatever the JSON parse function
// returned, by default the same types encoding/json produces when decoding into any.
type JSON struct {
	Value any
}

func (JSON) Kind() Kind { return KindJSON }
func (JSON) body()      {}

// Form is a body of application/x-www-form-urlencoded type. Entries are kept in their
// order, duplicates included.
type Form struct {
	form.Form
}

func (Form) Kind() Kind { return KindForm }
func (Form) body()      {}

// Text is a body of text/plain type, exactly as it was after decoding.
type Text string

func (Text) Kind() Kind { return KindText }
func (Text) body()      {}
