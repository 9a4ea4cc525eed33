package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveGenerationDuration("code", 150*time.Millisecond)
	pr.IncGenerationResult("code", ResultSuccess)
	pr.IncRegenerationResult("faq", "concise", ResultSuccess)
	pr.IncExportResult("remote", false)
	pr.IncSectionPush("Failed")
	// Basic scrape to ensure metrics encode without panic
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveGenerationDuration("code", time.Second)
	pr.IncGenerationResult("code", ResultFailed)
	pr.IncRegenerationResult("faq", "formal", ResultFailed)
	pr.IncExportResult("archive", true)
	pr.IncSectionPush("Success")
}
