package events

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for retry operations.
var (
	retriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msevents_retries_total",
		Help: "Total number of retry attempts against the events API",
	})

	retryExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msevents_retry_exhausted_total",
		Help: "Total number of times retry attempts were exhausted",
	})
)

// SleepFunc waits for the given duration, returning early with an error if
// the context is cancelled. Injectable so tests can assert backoff timing
// without real waiting.
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryConfig holds the configuration for the bounded retry loop.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts (including the first).
	MaxAttempts int

	// InitialBackoff is the sleep before the first retry; it doubles after
	// every retry.
	InitialBackoff time.Duration

	// Sleep performs the backoff wait. Nil means context-aware time.After.
	Sleep SleepFunc
}

// DefaultRetryConfig returns the retry configuration used against the
// events API: 3 attempts, 2s initial backoff, doubling each retry.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 2 * time.Second,
	}
}

func defaultSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrContextCancelled, ctx.Err())
	case <-time.After(d):
		return nil
	}
}

// retryWithBackoff runs fn up to cfg.MaxAttempts times, sleeping an
// exponentially doubling backoff between attempts. There is no sleep after
// the final attempt; its error is returned wrapped with ErrRetryExhausted
// so callers can match either the sentinel or the underlying failure.
func retryWithBackoff(ctx context.Context, cfg RetryConfig, fn func() error) error {
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = defaultSleep
	}

	var lastErr error
	backoff := cfg.InitialBackoff

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			if attempt > 1 {
				log.Info().
					Int("attempt", attempt).
					Msg("Request succeeded after retry")
			}
			return nil
		}

		lastErr = err

		if attempt >= cfg.MaxAttempts {
			break
		}

		retriesTotal.Inc()
		log.Debug().
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Err(err).
			Msg("Retrying request after backoff")

		if serr := sleep(ctx, backoff); serr != nil {
			return serr
		}

		backoff *= 2
	}

	retryExhaustedTotal.Inc()
	log.Warn().
		Int("max_attempts", cfg.MaxAttempts).
		Err(lastErr).
		Msg("Retry attempts exhausted")

	return fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, cfg.MaxAttempts, lastErr)
}
