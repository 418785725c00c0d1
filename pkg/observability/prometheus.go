package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements every hook interface with Prometheus collectors.
type Prometheus struct {
	ComputeTotal    *prometheus.CounterVec
	ComputeDuration prometheus.Histogram

	RenderTotal    *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec
	RenderBytes    *prometheus.CounterVec

	CacheRequests *prometheus.CounterVec
	CacheBytes    *prometheus.CounterVec

	HTTPInFlight prometheus.Gauge
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewPrometheus registers the collectors with reg. A nil reg creates
// unregistered collectors.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		ComputeTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "boxbuilder_compute_total",
			Help: "Piece set computations by row count and status",
		}, []string{"rows", "status"}),
		ComputeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "boxbuilder_compute_duration_seconds",
			Help:    "Time spent computing piece sets",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05},
		}),
		RenderTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "boxbuilder_render_total",
			Help: "Rendered artifacts by kind, format and status",
		}, []string{"kind", "format", "status"}),
		RenderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "boxbuilder_render_duration_seconds",
			Help:    "Time spent rendering artifacts",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind", "format"}),
		RenderBytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "boxbuilder_render_bytes_total",
			Help: "Bytes of rendered artifacts",
		}, []string{"kind", "format"}),
		CacheRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "boxbuilder_cache_requests_total",
			Help: "Cache lookups by key type and result",
		}, []string{"key_type", "result"}),
		CacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "boxbuilder_cache_written_bytes_total",
			Help: "Bytes written to the cache",
		}, []string{"key_type"}),
		HTTPInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "boxbuilder_http_requests_in_flight",
			Help: "HTTP requests being served",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "boxbuilder_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "boxbuilder_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (p *Prometheus) OnComputeStart(context.Context, int) {}

func (p *Prometheus) OnComputeComplete(_ context.Context, rows int, d time.Duration, err error) {
	p.ComputeTotal.WithLabelValues(strconv.Itoa(rows), status(err)).Inc()
	p.ComputeDuration.Observe(d.Seconds())
}

func (p *Prometheus) OnRenderStart(context.Context, string, string) {}

func (p *Prometheus) OnRenderComplete(_ context.Context, kind, format string, size int, d time.Duration, err error) {
	p.RenderTotal.WithLabelValues(kind, format, status(err)).Inc()
	p.RenderDuration.WithLabelValues(kind, format).Observe(d.Seconds())
	if err == nil {
		p.RenderBytes.WithLabelValues(kind, format).Add(float64(size))
	}
}

func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.CacheRequests.WithLabelValues(keyType, "hit").Inc()
}

func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.CacheRequests.WithLabelValues(keyType, "miss").Inc()
}

func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.CacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (p *Prometheus) OnRequest(context.Context, string, string) {
	p.HTTPInFlight.Inc()
}

func (p *Prometheus) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	p.HTTPInFlight.Dec()
	p.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	p.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*Prometheus)(nil)
	_ CacheHooks    = (*Prometheus)(nil)
	_ HTTPHooks     = (*Prometheus)(nil)
)
