// Package metrics exposes the Prometheus metrics registered by the other
// packages (request and retry counters in pkg/events, store hit/miss
// counters in pkg/store) over an optional HTTP listener.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handler returns the Prometheus scrape handler for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve starts a background HTTP listener serving /metrics on addr.
// A listen failure is logged, not fatal: metrics are ambient, the tool
// surface keeps working without them.
func Serve(addr string, logger zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Serving Prometheus metrics")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("Metrics listener failed")
		}
	}()
}
