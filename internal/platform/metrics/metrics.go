package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sipeka", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "status"})
	HTTPDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sipeka", Name: "http_request_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	})
	WebhookEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sipeka", Name: "webhook_events_total", Help: "Identity provider webhook events by outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, WebhookEvents)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRequest(method string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, statusLabel(status)).Inc()
	HTTPDuration.Observe(d.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
