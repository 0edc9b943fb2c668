package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "urlreader",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Backend requests issued by the client, by endpoint and outcome.",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "urlreader",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Latency of backend requests issued by the client.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"endpoint"})
)

// endpointLabel keeps conversation ids out of label values.
func endpointLabel(method, path string) string {
	resource, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	return method + " " + resource
}

// observe records one request. A zero status means the transport failed.
func observe(method, path string, status int, start time.Time) {
	endpoint := endpointLabel(method, path)
	code := "error"
	if status != 0 {
		code = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(endpoint, code).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
