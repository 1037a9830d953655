package stdhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/indigo-web/body"
	"github.com/indigo-web/body/internal/compresstest"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, handled *body.Body) http.Handler {
	p, err := body.New(nil)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(Middleware(p))
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		b, ok := FromContext(r.Context())
		if ok {
			*handled = b
		}

		w.WriteHeader(http.StatusOK)
	})

	return r
}

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader("hello"))
	r.Header.Set("Content-Type", "text/plain; charset=utf-8")
	r.Header.Add("Content-Encoding", "gzip , ,br")
	r.Header.Add("Content-Encoding", "Deflate")

	req := NewRequest(r)
	require.Equal(t, "PATCH", req.Method())
	require.Equal(t, "text/plain; charset=utf-8", req.ContentType())
	require.Equal(t, []string{"gzip", "br", "Deflate"}, req.ContentEncoding())
	require.False(t, req.Closed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.True(t, NewRequest(r.WithContext(ctx)).Closed())
}

func TestMiddleware(t *testing.T) {
	t.Run("json with codings", func(t *testing.T) {
		var handled body.Body
		data := compresstest.Chain([]byte(`{"hello":"world"}`), "br", "x-gzip", "gzip", "deflate")
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Content-Encoding", "br, x-gzip, gzip, deflate")

		response := serve(newRouter(t, &handled), r)
		require.Equal(t, http.StatusOK, response.Code)
		require.Equal(t, body.JSON{Value: map[string]any{"hello": "world"}}, handled)
	})

	t.Run("skipped", func(t *testing.T) {
		var handled body.Body
		r := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")

		response := serve(newRouter(t, &handled), r)
		require.Equal(t, http.StatusOK, response.Code)
		require.Nil(t, handled)
	})

	t.Run("unsupported encoding", func(t *testing.T) {
		var handled body.Body
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Hello World"))
		r.Header.Set("Content-Type", "text/plain")
		r.Header.Set("Content-Encoding", "compress")

		response := serve(newRouter(t, &handled), r)
		require.Equal(t, http.StatusUnsupportedMediaType, response.Code)
		require.Empty(t, response.Body.String())
		require.Nil(t, handled)
	})

	t.Run("body mismatch", func(t *testing.T) {
		var handled body.Body
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Not a JSON"))
		r.Header.Set("Content-Type", "application/json")

		response := serve(newRouter(t, &handled), r)
		require.Equal(t, http.StatusUnsupportedMediaType, response.Code)
		require.Nil(t, handled)
	})

	t.Run("over the wire", func(t *testing.T) {
		p, err := body.New(nil)
		require.NoError(t, err)

		server := httptest.NewServer(Middleware(p)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := FromContext(r.Context())
			_ = json.NewEncoder(w).Encode(b)
		})))
		defer server.Close()

		data := compresstest.Encode([]byte("a=1&b=2&a=3"), "gzip")
		request, err := http.NewRequest(http.MethodPut, server.URL, bytes.NewReader(data))
		require.NoError(t, err)
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		request.Header.Set("Content-Encoding", "gzip")

		response, err := server.Client().Do(request)
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusOK, response.StatusCode)
		encoded, err := io.ReadAll(response.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"Form":[{"Name":"a","Value":"1"},{"Name":"b","Value":"2"},{"Name":"a","Value":"3"}]}`, string(encoded))
	})
}
