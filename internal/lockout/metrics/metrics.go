package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Clear reasons.
const (
	ReasonAdmin   = "admin"
	ReasonExpired = "expired"
	ReasonCorrupt = "corrupt"
)

type Metrics struct {
	LockoutsSet     prometheus.Counter
	LockoutsCleared *prometheus.CounterVec
	ChecksTotal     *prometheus.CounterVec
	ClearFailures   prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		LockoutsSet: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_lockout_set_total",
			Help: "Total number of lockouts written",
		}),
		LockoutsCleared: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_lockout_cleared_total",
			Help: "Total number of lockouts cleared, by reason",
		}, []string{"reason"}),
		ChecksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_lockout_checks_total",
			Help: "Total number of lockout checks, by outcome",
		}, []string{"outcome"}),
		ClearFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_lockout_clear_failures_total",
			Help: "Lazy clears that failed to persist; the applicant was still treated as unlocked",
		}),
	}
}

func (m *Metrics) IncrementSet() {
	if m == nil {
		return
	}
	m.LockoutsSet.Inc()
}

func (m *Metrics) IncrementCleared(reason string) {
	if m == nil {
		return
	}
	m.LockoutsCleared.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementChecks(outcome string) {
	if m == nil {
		return
	}
	m.ChecksTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementClearFailures() {
	if m == nil {
		return
	}
	m.ClearFailures.Inc()
}
