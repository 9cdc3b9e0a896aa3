package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPosterMetricsRecord(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newPosterMetrics(registry, Config{ServiceName: "reviewqr-test", Environment: "test"})

	m.ObserveRender("pdf", "success", 2*time.Second)
	m.IncCacheEvent("hit")
	m.IncCacheEvent("hit")
	m.IncCacheEvent("miss")
	m.AddSweepDeleted(3)
	m.AddSweepDeleted(0)
	m.AddSweepDeleted(-1)

	hits := testutil.ToFloat64(m.cacheEvents.WithLabelValues("hit"))
	if hits != 2 {
		t.Fatalf("cache hits = %v, want 2", hits)
	}
	misses := testutil.ToFloat64(m.cacheEvents.WithLabelValues("miss"))
	if misses != 1 {
		t.Fatalf("cache misses = %v, want 1", misses)
	}
	if deleted := testutil.ToFloat64(m.sweepDeleted); deleted != 3 {
		t.Fatalf("sweep deleted = %v, want 3", deleted)
	}
	if count := testutil.CollectAndCount(m.renderDuration); count != 1 {
		t.Fatalf("render duration series = %d, want 1", count)
	}
}

func TestPosterMetricsNilSafe(t *testing.T) {
	var m *PosterMetrics
	m.ObserveRender("pdf", "success", time.Second)
	m.IncCacheEvent("hit")
	m.AddSweepDeleted(1)
}

func TestPosterSingleton(t *testing.T) {
	ResetPosterMetricsForTest()
	t.Cleanup(ResetPosterMetricsForTest)

	registry := prometheus.NewRegistry()
	restore := prometheus.DefaultRegisterer
	prometheus.DefaultRegisterer = registry
	t.Cleanup(func() { prometheus.DefaultRegisterer = restore })

	first := Poster()
	second := PosterWithConfig(Config{ServiceName: "other"})
	if first != second {
		t.Fatalf("expected one shared instance")
	}
}
