package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/finledger/internal/domain"
)

// Report export outcomes.
const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Session metrics
	SessionsStartedTotal prometheus.Counter
	SessionsEndedTotal   prometheus.Counter
	ActiveSessions       prometheus.Gauge

	// Entry metrics
	EntriesRecorded *prometheus.CounterVec

	// Report metrics
	ReportsExported *prometheus.CounterVec
	ReportDuration  prometheus.Histogram
	ReportSize      prometheus.Histogram

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates all Prometheus metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Session metrics
		SessionsStartedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "finledger_sessions_started_total",
			Help: "Total number of sessions started",
		}),
		SessionsEndedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "finledger_sessions_ended_total",
			Help: "Total number of sessions ended or expired",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "finledger_active_sessions",
			Help: "Current number of active sessions",
		}),

		// Entry metrics
		EntriesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finledger_entries_recorded_total",
				Help: "Total entries recorded by kind and category",
			},
			[]string{"kind", "category"},
		),

		// Report metrics
		ReportsExported: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finledger_reports_exported_total",
				Help: "Total report exports by outcome",
			},
			[]string{"status"},
		),
		ReportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "finledger_report_duration_seconds",
			Help:    "Duration of report rendering",
			Buckets: prometheus.DefBuckets,
		}),
		ReportSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "finledger_report_size_bytes",
			Help:    "Size of rendered reports",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		}),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "finledger_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// SessionStarted implements usecase.Observer.
func (m *Metrics) SessionStarted() {
	m.SessionsStartedTotal.Inc()
	m.ActiveSessions.Inc()
}

// SessionsEnded implements usecase.Observer.
func (m *Metrics) SessionsEnded(n int) {
	m.SessionsEndedTotal.Add(float64(n))
	m.ActiveSessions.Sub(float64(n))
}

// EntryRecorded implements usecase.Observer.
func (m *Metrics) EntryRecorded(kind string, category domain.Category) {
	m.EntriesRecorded.WithLabelValues(kind, category.String()).Inc()
}

// ReportExported implements usecase.Observer.
func (m *Metrics) ReportExported(duration time.Duration, size int, err error) {
	if err != nil {
		m.ReportsExported.WithLabelValues(statusError).Inc()
		return
	}

	m.ReportsExported.WithLabelValues(statusSuccess).Inc()
	m.ReportDuration.Observe(duration.Seconds())
	m.ReportSize.Observe(float64(size))
}

// RateLimited counts a request rejected by the rate limiter.
func (m *Metrics) RateLimited() {
	m.RateLimitHits.Inc()
}
