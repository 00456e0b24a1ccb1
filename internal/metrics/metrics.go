package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_api_requests_total",
			Help: "Total number of requests sent to the POS server.",
		},
		[]string{"code", "method", "resource"},
	)
	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pos_api_request_duration_seconds",
			Help:    "Duration of requests to the POS server in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)

	checkoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_checkouts_total",
			Help: "Checkout attempts by payment method and outcome.",
		},
		[]string{"method", "outcome"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

type instrumentedTransport struct {
	next http.RoundTripper
}

// InstrumentTransport wraps an outbound transport with request counters and
// latency histograms, labeled by the first path segment under /api.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	return &instrumentedTransport{next: next}
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {

	start := time.Now()
	resource := resourceLabel(req.URL.Path)

	resp, err := t.next.RoundTrip(req)

	apiRequestDuration.WithLabelValues(req.Method, resource).Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}

	apiRequestsTotal.WithLabelValues(code, req.Method, resource).Inc()

	return resp, err
}

// resourceLabel keeps metric cardinality bounded: /api/products/42 and
// /api/products both count under "products".
func resourceLabel(path string) string {

	trimmed := strings.Trim(path, "/")

	segments := strings.Split(trimmed, "/")

	for i, segment := range segments {
		if segment == "api" && i+1 < len(segments) {
			return segments[i+1]
		}
	}

	if len(segments) > 0 && segments[0] != "" {
		return segments[0]
	}

	return "unknown"
}

// RecordCheckout counts one finished checkout attempt.
func RecordCheckout(paymentMethod, outcome string) {
	checkoutsTotal.WithLabelValues(paymentMethod, outcome).Inc()
}

// Handler returns the http.Handler for the Prometheus /metrics endpoint.
func Handler() http.Handler {

	return promhttp.Handler()
}
