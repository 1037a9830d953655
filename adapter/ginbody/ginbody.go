// Package ginbody plugs the body parser into gin.
package ginbody

import (
	"github.com/gin-gonic/gin"
	"github.com/indigo-web/body"
	"github.com/indigo-web/body/adapter/stdhttp"
	"github.com/indigo-web/body/http/status"
)

// Key is the gin context key the parsed body is stored by.
const Key = "body"

// Middleware parses request bodies. On failure, the request is aborted with the error's
// status code and the error itself is attached to the context.
func Middleware(p *body.Parser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		b, err := p.Parse(ctx.Request.Context(), stdhttp.NewRequest(ctx.Request))
		if err != nil {
			_ = ctx.Error(err)
			ctx.AbortWithStatus(int(status.CodeOf(err)))
			return
		}

		if b != nil {
			ctx.Set(Key, b)
		}

		ctx.Next()
	}
}

// Get returns the parsed body. False is returned if the body was skipped or the
// middleware wasn't used.
func Get(ctx *gin.Context) (body.Body, bool) {
	b, ok := ctx.Get(Key)
	if !ok {
		return nil, false
	}

	parsed, ok := b.(body.Body)
	return parsed, ok
}
