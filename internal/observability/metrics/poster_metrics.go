package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PosterMetrics instruments the render pipeline: how long headless renders
// take, how often the file cache answers, and what the sweep reclaims.
type PosterMetrics struct {
	renderDuration *prometheus.HistogramVec
	cacheEvents    *prometheus.CounterVec
	sweepDeleted   prometheus.Counter
}

var (
	posterMetricsOnce sync.Once
	posterMetrics     *PosterMetrics
)

func Poster() *PosterMetrics {
	return PosterWithConfig(Config{})
}

func PosterWithConfig(cfg Config) *PosterMetrics {
	posterMetricsOnce.Do(func() {
		posterMetrics = newPosterMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return posterMetrics
}

func ResetPosterMetricsForTest() {
	posterMetricsOnce = sync.Once{}
	posterMetrics = nil
}

func newPosterMetrics(registerer prometheus.Registerer, cfg Config) *PosterMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "reviewqr"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	renderDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "reviewqr_poster_render_duration_seconds",
			Help: "Wall time of a headless browser render, browser launch included.",
			Buckets: []float64{
				0.5,
				1,
				2,
				4,
				8,
				15, // content-load timeout boundary
				30,
			},
			ConstLabels: constLabels,
		},
		[]string{"format", "result"}, // pdf|png, success | failed
	)

	cacheEvents := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "reviewqr_poster_cache_events_total",
			Help:        "Poster file-cache lookups by outcome.",
			ConstLabels: constLabels,
		},
		[]string{"event"}, // hit | miss
	)

	sweepDeleted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "reviewqr_poster_sweep_deleted_total",
			Help:        "Cache files removed by the age-based sweep worker.",
			ConstLabels: constLabels,
		},
	)

	registerer.MustRegister(renderDuration, cacheEvents, sweepDeleted)

	return &PosterMetrics{
		renderDuration: renderDuration,
		cacheEvents:    cacheEvents,
		sweepDeleted:   sweepDeleted,
	}
}

func (m *PosterMetrics) ObserveRender(format, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(format, result).Observe(elapsed.Seconds())
}

func (m *PosterMetrics) IncCacheEvent(event string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(event).Inc()
}

func (m *PosterMetrics) AddSweepDeleted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.sweepDeleted.Add(float64(n))
}
