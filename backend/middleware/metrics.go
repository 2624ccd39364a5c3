// ABOUTME: Prometheus instrumentation middleware for API routes
// ABOUTME: Counts requests by route, method and status and records latency

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/markalston/inference-calculator/backend/observability"
)

// Instrument returns middleware that records request count and duration
// under the given route label. Using the registered pattern rather than the
// raw path keeps label cardinality bounded. A nil metrics disables it.
func Instrument(m *observability.Metrics, route string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if m == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next(wrapped, r)

			m.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
			m.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	}
}
