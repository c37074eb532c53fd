// Package metrics provides the centralized Prometheus metrics registry for
// the Place client. All metrics are defined in their respective packages
// (client, scanner) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Place client.
// All metrics are automatically registered via promauto in their respective
// packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - place_requests_total{status} (Counter): Requests by HTTP status or "network_error"
//   - place_request_duration_seconds (Histogram): Single attempt duration
//   - place_fetch_failures_total (Counter): Failed fetch attempts (network, HTTP or decode)
//
// Retry Metrics (pkg/client):
//   - place_retries_total (Counter): Retry attempts
//   - place_retry_exhausted_total (Counter): Bounded retry budgets exhausted
//
// Scan Metrics (pkg/scanner):
//   - place_batches_total (Counter): Completed scan batches
//   - place_pixels_fetched_total (Counter): Pixels fetched and placed into a grid
//   - place_assembly_anomalies_total (Counter): Results that did not map into the grid
//
// Example Prometheus Queries:
//
//   # Attempt failure rate
//   rate(place_fetch_failures_total[1m]) / rate(place_requests_total[1m])
//
//   # P95 attempt latency
//   histogram_quantile(0.95, rate(place_request_duration_seconds_bucket[5m]))
//
//   # Scan throughput (pixels per second)
//   rate(place_pixels_fetched_total[1m])
