package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration   *prom.HistogramVec
	buildDuration   prom.Histogram
	buildOutcome    *prom.CounterVec
	documentsLoaded prom.Gauge
	pagesRendered   prom.Gauge
	tagsIndexed     prom.Gauge
}

// NewPrometheusRecorder constructs and registers build metrics on reg. A nil
// registry gets a fresh private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "blogforge",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "blogforge",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogforge",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		documentsLoaded: prom.NewGauge(prom.GaugeOpts{
			Namespace: "blogforge",
			Name:      "documents_loaded",
			Help:      "Documents included in the last build",
		}),
		pagesRendered: prom.NewGauge(prom.GaugeOpts{
			Namespace: "blogforge",
			Name:      "pages_rendered",
			Help:      "Pages written by the last build",
		}),
		tagsIndexed: prom.NewGauge(prom.GaugeOpts{
			Namespace: "blogforge",
			Name:      "tags_indexed",
			Help:      "Distinct tags in the last build",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.buildOutcome,
		pr.documentsLoaded, pr.pagesRendered, pr.tagsIndexed)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	p.buildOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) SetDocumentsLoaded(n int) { p.documentsLoaded.Set(float64(n)) }
func (p *PrometheusRecorder) SetPagesRendered(n int)   { p.pagesRendered.Set(float64(n)) }
func (p *PrometheusRecorder) SetTagsIndexed(n int)     { p.tagsIndexed.Set(float64(n)) }

// HTTPHandler returns an http.Handler serving the registry's metrics.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
