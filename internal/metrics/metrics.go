package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oceandesk",
			Name:      "api_requests_total",
			Help:      "Outbound API requests by path and outcome.",
		},
		[]string{"path", "outcome"},
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "oceandesk",
			Name:      "api_request_duration_seconds",
			Help:      "Outbound API request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	toasts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oceandesk",
			Name:      "toasts_total",
			Help:      "Toast notifications by kind.",
		},
		[]string{"kind"},
	)

	pageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oceandesk",
			Name:      "page_views_total",
			Help:      "Page switches by target page.",
		},
		[]string{"page"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(apiRequests, apiRequestDuration, toasts, pageViews)
	})
}

// IncAPIRequest increments the request counter for a path/outcome pair.
func IncAPIRequest(path, outcome string) {
	apiRequests.WithLabelValues(path, outcome).Inc()
}

// ObserveAPIRequest records the latency of one request.
func ObserveAPIRequest(path string, seconds float64) {
	apiRequestDuration.WithLabelValues(path).Observe(seconds)
}

// IncToast increments the toast counter for a kind.
func IncToast(kind string) {
	toasts.WithLabelValues(kind).Inc()
}

// IncPageView increments the page view counter.
func IncPageView(page string) {
	pageViews.WithLabelValues(page).Inc()
}
