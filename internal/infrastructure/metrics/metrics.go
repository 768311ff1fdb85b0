// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "certifix"

// Recorder owns a registry so tests can create isolated instances.
type Recorder struct {
	registry *prometheus.Registry

	limitRejections    *prometheus.CounterVec
	certificatesIssued *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		limitRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "usage",
				Name:      "limit_rejections_total",
				Help:      "Creations rejected because a plan limit was reached.",
			},
			[]string{"plan", "limit"},
		),
		certificatesIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "certificates",
				Name:      "issued_total",
				Help:      "Certificates issued, by plan.",
			},
			[]string{"plan"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
	}

	r.registry.MustRegister(
		r.limitRejections,
		r.certificatesIssued,
		r.requestDuration,
		r.requestTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) LimitRejected(planID, tag string) {
	r.limitRejections.WithLabelValues(planID, tag).Inc()
}

func (r *Recorder) CertificatesIssued(planID string, n int) {
	r.certificatesIssued.WithLabelValues(planID).Add(float64(n))
}

func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)
	r.requestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
	r.requestTotal.WithLabelValues(method, route, code).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
