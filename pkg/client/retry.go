package client

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for retry operations.
var (
	placeRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "place_retries_total",
		Help: "Total number of pixel fetch retry attempts",
	})

	placeRetryExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "place_retry_exhausted_total",
		Help: "Total number of times a bounded retry budget was exhausted",
	})
)

// RetryPolicy holds the configuration for retry logic.
//
// The Place event server is flaky and short-lived; the policy that matched it
// in practice is infinite patience: retry every failure at a fixed short
// interval until the request finally succeeds. MaxAttempts bounds that
// behavior for callers that need a worst-case latency, and the context
// cancels it outright.
type RetryPolicy struct {
	// Delay is the fixed wait between attempts.
	Delay time.Duration

	// MaxAttempts is the total number of attempts (including the first).
	// Zero means unbounded.
	MaxAttempts int
}

// DefaultRetryPolicy returns the unbounded fixed-interval policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Delay:       100 * time.Millisecond,
		MaxAttempts: 0,
	}
}

// retry executes fn until it succeeds, waiting policy.Delay between attempts.
// onFailure is invoked after every failed attempt with the running failure
// count and the error; the caller decides what to report. Cancellation is
// checked during each delay, so an unbounded policy still terminates when the
// context does.
func retry(ctx context.Context, policy RetryPolicy, onFailure func(failures int, err error), fn func() error) error {
	failures := 0
	for {
		err := fn()
		if err == nil {
			return nil
		}

		failures++
		if onFailure != nil {
			onFailure(failures, err)
		}

		if policy.MaxAttempts > 0 && failures >= policy.MaxAttempts {
			placeRetryExhaustedTotal.Inc()
			return fmt.Errorf("%w after %d attempts: %v", ErrRetryExhausted, policy.MaxAttempts, err)
		}

		placeRetriesTotal.Inc()

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrContextCancelled, ctx.Err())
		case <-time.After(policy.Delay):
		}
	}
}
