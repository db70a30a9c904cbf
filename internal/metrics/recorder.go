// Package metrics exposes render and HTTP counters through Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder owns a private registry so several instances can coexist in tests.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	records        *prometheus.GaugeVec
	lastClose      *prometheus.GaugeVec
	httpRequests   *prometheus.CounterVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockchart_renders_total",
				Help: "Total number of chart renders",
			},
			[]string{"source", "result"},
		),
		renderDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockchart_render_duration_seconds",
				Help:    "Duration of chart renders in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockchart_records",
				Help: "Number of trade records in the last render",
			},
			[]string{"symbol"},
		),
		lastClose: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockchart_last_close",
				Help: "Last close price in the last render",
			},
			[]string{"symbol"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockchart_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
	}
}

// RecordRender records one render attempt and its duration.
func (r *Recorder) RecordRender(source string, d time.Duration, err error) {
	if r == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.renders.WithLabelValues(source, result).Inc()
	r.renderDuration.WithLabelValues(source).Observe(d.Seconds())
}

// RecordSeries records the size and last close of the rendered series.
func (r *Recorder) RecordSeries(symbol string, count int, lastClose float64) {
	if r == nil {
		return
	}
	r.records.WithLabelValues(symbol).Set(float64(count))
	r.lastClose.WithLabelValues(symbol).Set(lastClose)
}

// RecordRequest records one HTTP request. Pass the route template, not the raw URL.
func (r *Recorder) RecordRequest(route, method, status string) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, status).Inc()
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
