package ginbody

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/indigo-web/body"
	"github.com/indigo-web/body/internal/compresstest"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, handled *body.Body, errs *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	p, err := body.New(nil)
	require.NoError(t, err)

	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Next()
		*errs = ctx.Errors.Errors()
	})
	r.Use(Middleware(p))
	r.Any("/", func(ctx *gin.Context) {
		if b, ok := Get(ctx); ok {
			*handled = b
		}

		ctx.Status(http.StatusNoContent)
	})

	return r
}

func TestMiddleware(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var (
			handled body.Body
			errs    []string
		)

		data := compresstest.Encode([]byte("Hello World"), "deflate")
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
		r.Header.Set("Content-Type", "text/plain")
		r.Header.Set("Content-Encoding", "deflate")
		recorder := httptest.NewRecorder()
		newEngine(t, &handled, &errs).ServeHTTP(recorder, r)

		require.Equal(t, http.StatusNoContent, recorder.Code)
		require.Equal(t, body.Text("Hello World"), handled)
		require.Empty(t, errs)
	})

	t.Run("skipped", func(t *testing.T) {
		var (
			handled body.Body
			errs    []string
		)

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<html></html>"))
		r.Header.Set("Content-Type", "text/html")
		recorder := httptest.NewRecorder()
		newEngine(t, &handled, &errs).ServeHTTP(recorder, r)

		require.Equal(t, http.StatusNoContent, recorder.Code)
		require.Nil(t, handled)
	})

	t.Run("failure", func(t *testing.T) {
		var (
			handled body.Body
			errs    []string
		)

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Hello World"))
		r.Header.Set("Content-Type", "text/plain")
		r.Header.Set("Content-Encoding", "gzip")
		recorder := httptest.NewRecorder()
		newEngine(t, &handled, &errs).ServeHTTP(recorder, r)

		require.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
		require.Empty(t, recorder.Body.String())
		require.Nil(t, handled)
		require.Len(t, errs, 1)
	})
}
