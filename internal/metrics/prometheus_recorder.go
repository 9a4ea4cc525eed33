package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	generationDuration *prom.HistogramVec
	generationResults  *prom.CounterVec
	regenResults       *prom.CounterVec
	exportResults      *prom.CounterVec
	sectionPushes      *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.generationDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "docugen",
			Name:      "generation_duration_seconds",
			Help:      "Duration of full-generation capability calls",
			Buckets:   prom.DefBuckets,
		}, []string{"mode"})
		pr.generationResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docugen",
			Name:      "generation_results_total",
			Help:      "Full generation outcomes by mode and result",
		}, []string{"mode", "result"})
		pr.regenResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docugen",
			Name:      "regeneration_results_total",
			Help:      "Single-section regeneration outcomes",
		}, []string{"section", "tone", "result"})
		pr.exportResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docugen",
			Name:      "export_results_total",
			Help:      "Export outcomes by mode",
		}, []string{"mode", "result"})
		pr.sectionPushes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docugen",
			Name:      "section_push_results_total",
			Help:      "Remote per-section upsert results by status",
		}, []string{"status"})
		reg.MustRegister(pr.generationDuration, pr.generationResults, pr.regenResults, pr.exportResults, pr.sectionPushes)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveGenerationDuration(mode string, d time.Duration) {
	if p == nil || p.generationDuration == nil {
		return
	}
	p.generationDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerationResult(mode string, result ResultLabel) {
	if p == nil || p.generationResults == nil {
		return
	}
	p.generationResults.WithLabelValues(mode, string(result)).Inc()
}

func (p *PrometheusRecorder) IncRegenerationResult(section, tone string, result ResultLabel) {
	if p == nil || p.regenResults == nil {
		return
	}
	p.regenResults.WithLabelValues(section, tone, string(result)).Inc()
}

func (p *PrometheusRecorder) IncExportResult(mode string, success bool) {
	if p == nil || p.exportResults == nil {
		return
	}
	result := string(ResultFailed)
	if success {
		result = string(ResultSuccess)
	}
	p.exportResults.WithLabelValues(mode, result).Inc()
}

func (p *PrometheusRecorder) IncSectionPush(status string) {
	if p == nil || p.sectionPushes == nil {
		return
	}
	p.sectionPushes.WithLabelValues(status).Inc()
}
