package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ReportsTotal     *prometheus.CounterVec
	DiagnosticsTotal *prometheus.CounterVec
	LongTripsTotal   prometheus.Counter
	ReportDuration   prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		ReportsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_presence_reports_total",
			Help: "Total presence reports computed, by whether the requirement was met",
		}, []string{"met"}),
		DiagnosticsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_presence_diagnostics_total",
			Help: "Data-quality diagnostics raised while computing presence, by kind",
		}, []string{"kind"}),
		LongTripsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_presence_long_trips_total",
			Help: "Long trips found across all presence reports",
		}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "intake_presence_report_duration_seconds",
			Help:    "Time to load records and compute a presence report",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveReport(met bool, longTrips int, seconds float64) {
	if m == nil {
		return
	}
	label := "false"
	if met {
		label = "true"
	}
	m.ReportsTotal.WithLabelValues(label).Inc()
	m.LongTripsTotal.Add(float64(longTrips))
	m.ReportDuration.Observe(seconds)
}

func (m *Metrics) IncrementDiagnostic(kind string) {
	if m == nil {
		return
	}
	m.DiagnosticsTotal.WithLabelValues(kind).Inc()
}
