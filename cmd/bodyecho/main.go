// Command bodyecho is a demo server, which decodes request bodies and echoes them back as JSON.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/body"
	"github.com/indigo-web/body/config"
	"github.com/indigo-web/body/http/codec"
	"github.com/indigo-web/body/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/MikeTTh/env"
	"go.uber.org/zap"
)

var (
	DEBUG       = env.Bool("DEBUG", false)
	bindAddr    = env.String("BIND_ADDR", ":8000")
	extraCoding = env.Bool("EXTRA_CODINGS", false)
	maxCodings  = env.Int("MAX_ENCODING_TOKENS", 0) // 0 keeps the default
)

func main() {
	var (
		logger *zap.Logger
		err    error
	)

	if DEBUG {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, logger); err != nil {
		logger.Error("Failed to run server", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg := config.Default()
	if maxCodings > 0 {
		cfg.Headers.MaxEncodingTokens = int(maxCodings)
	}

	if extraCoding {
		cfg.Body.Codings = append(cfg.Body.Codings, codec.NewZSTD(), codec.NewSnappy())
	}

	reg := prometheus.NewRegistry()
	p, err := body.New(cfg,
		body.WithLogger(logger),
		body.WithObserver(metrics.New(reg, "bodyecho")),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              bindAddr,
		Handler:           newRouter(p, reg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server Shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Running server", zap.String("address", bindAddr))
	if err = srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("Server Shutdown gracefully")
	return nil
}
