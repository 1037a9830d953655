// Package stdhttp plugs the body parser into net/http handlers.
package stdhttp

import (
	"context"
	"io"
	"net/http"
	"slices"

	"github.com/indigo-web/body"
	"github.com/indigo-web/body/http/status"
	"github.com/indigo-web/body/internal/strutil"
)

var _ body.Request = Request{}

// Request adapts *http.Request to body.Request.
type Request struct {
	request *http.Request
}

func NewRequest(request *http.Request) Request {
	return Request{request: request}
}

func (r Request) Method() string {
	return r.request.Method
}

// Closed reports whether the client is gone or there is no body at all.
func (r Request) Closed() bool {
	return r.request.Body == nil || r.request.Context().Err() != nil
}

func (r Request) ContentType() string {
	return r.request.Header.Get("Content-Type")
}

func (r Request) ContentEncoding() []string {
	return slices.Collect(strutil.WalkList(r.request.Header.Values("Content-Encoding")...))
}

func (r Request) Body() io.Reader {
	return r.request.Body
}

type ctxKey struct{}

// Middleware parses request bodies before passing them to the next handler. Parsed bodies
// are available via FromContext. If the body can't be parsed, the response consists of the
// status line only and the next handler isn't called.
func Middleware(p *body.Parser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, err := p.Parse(r.Context(), NewRequest(r))
			if err != nil {
				w.WriteHeader(int(status.CodeOf(err)))
				return
			}

			if b != nil {
				r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, b))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// FromContext returns the body parsed by the Middleware. False is returned if the body
// was skipped.
func FromContext(ctx context.Context) (body.Body, bool) {
	b, ok := ctx.Value(ctxKey{}).(body.Body)
	return b, ok
}
