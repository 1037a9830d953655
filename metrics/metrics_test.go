package metrics

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/indigo-web/body"
	"github.com/indigo-web/body/internal/compresstest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type request struct {
	method, contentType string
	encoding            []string
	data                []byte
}

func (r request) Method() string            { return r.method }
func (r request) Closed() bool              { return false }
func (r request) ContentType() string       { return r.contentType }
func (r request) ContentEncoding() []string { return r.encoding }
func (r request) Body() io.Reader           { return bytes.NewReader(r.data) }

func TestObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	observer := New(reg, "test")
	p, err := body.New(nil, body.WithObserver(observer))
	require.NoError(t, err)

	ctx := context.Background()
	_, _ = p.Parse(ctx, request{method: "GET"})
	_, _ = p.Parse(ctx, request{method: "POST", contentType: "image/png"})
	_, _ = p.Parse(ctx, request{method: "POST", contentType: "text/plain", data: []byte("Hello World")})
	_, _ = p.Parse(ctx, request{
		method:      "POST",
		contentType: "application/json",
		encoding:    []string{"GZIP"},
		data:        compresstest.Encode([]byte(`{}`), "gzip"),
	})
	_, _ = p.Parse(ctx, request{method: "POST", contentType: "text/plain", encoding: []string{"whatever"}})
	_, _ = p.Parse(ctx, request{method: "POST", contentType: "text/plain", encoding: []string{"Br"}, data: []byte("\x11garbage")})
	_, _ = p.Parse(ctx, request{method: "POST", contentType: "application/json", data: []byte("Not a JSON")})

	require.Equal(t, 1.0, testutil.ToFloat64(observer.outcomes.WithLabelValues("skipped", "none", body.ReasonMethod)))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.outcomes.WithLabelValues("skipped", "none", body.ReasonContentType)))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.outcomes.WithLabelValues("parsed", "text", "")))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.outcomes.WithLabelValues("parsed", "json", "")))
	require.Equal(t, 2.0, testutil.ToFloat64(observer.outcomes.WithLabelValues("failed", "text", "")))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.outcomes.WithLabelValues("failed", "json", "")))

	require.Equal(t, 1.0, testutil.ToFloat64(observer.failures.WithLabelValues("unsupported encoding", "unsupported", "415")))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.failures.WithLabelValues("decompression", "br", "415")))
	require.Equal(t, 1.0, testutil.ToFloat64(observer.failures.WithLabelValues("body mismatch", "none", "415")))

	require.Equal(t, 2, testutil.CollectAndCount(observer.sizes))
}
