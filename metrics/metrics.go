// Package metrics exposes parser outcomes as prometheus metrics.
package metrics

import (
	"strings"

	"github.com/indigo-web/body"
	"github.com/indigo-web/body/http/status"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ body.Observer = new(Observer)

// Observer implements body.Observer.
type Observer struct {
	outcomes *prometheus.CounterVec
	sizes    *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// New registers the metrics in the registerer. Names are prefixed with the namespace,
// if it's not empty.
func New(reg prometheus.Registerer, namespace string) *Observer {
	factory := promauto.With(reg)

	return &Observer{
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "body_requests_total",
				Help:      "Total number of processed request bodies",
			},
			[]string{"state", "kind", "reason"},
		),
		sizes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "body_decoded_size_bytes",
				Help:      "Size of successfully decoded request bodies",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
			},
			[]string{"kind"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "body_failures_total",
				Help:      "Total number of request bodies failed to be processed",
			},
			[]string{"error", "coding", "code"},
		),
	}
}

func (o *Observer) Observe(outcome body.Outcome) {
	o.outcomes.WithLabelValues(outcome.State.String(), outcome.Kind.String(), outcome.Reason).Inc()

	switch outcome.State {
	case body.Parsed:
		o.sizes.WithLabelValues(outcome.Kind.String()).Observe(float64(outcome.Size))
	case body.Failed:
		err := outcome.Err
		o.failures.WithLabelValues(err.Kind.String(), codingLabel(err), status.StringCode(err.StatusCode())).Inc()
	}
}

// codingLabel keeps the label cardinality bounded: tokens of unsupported codings are
// whatever clients send, so they aren't exposed.
func codingLabel(err *body.Error) string {
	switch {
	case err.Kind == body.UnsupportedEncoding:
		return "unsupported"
	case len(err.Coding) == 0:
		return "none"
	default:
		return strings.ToLower(err.Coding)
	}
}
