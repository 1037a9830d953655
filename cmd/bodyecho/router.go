package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/indigo-web/body"
	"github.com/indigo-web/body/adapter/stdhttp"
	json "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type echoResponse struct {
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

func newRouter(p *body.Parser, reg *prometheus.Registry, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.With(stdhttp.Middleware(p)).HandleFunc("/echo", echo(logger))

	return r
}

func echo(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := echoResponse{Kind: body.KindNone.String()}

		if b, ok := stdhttp.FromContext(r.Context()); ok {
			response.Kind = b.Kind().String()

			switch b := b.(type) {
			case body.JSON:
				response.Value = b.Value
			case body.Text:
				response.Value = string(b)
			case body.Form:
				values := make(map[string][]string)
				for name, value := range b.Iter() {
					values[name] = append(values[name], value)
				}

				response.Value = values
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to write response", zap.Error(err))
		}
	}
}
