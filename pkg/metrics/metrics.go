package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and path.",
		},
		[]string{"method", "path"},
	)

	proxyFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "proxy_failures_total",
			Help:      "Failed forwards from the gateway to the server tier.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, proxyFailures)
	})
}

func IncHTTP(method, path string) {
	httpRequests.WithLabelValues(method, path).Inc()
}

func IncProxyFailure() {
	proxyFailures.Inc()
}
