package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	DecisionsTotal *prometheus.CounterVec
	FailOpenTotal  prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		DecisionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_gate_decisions_total",
			Help: "Gate decisions on restricted paths, by action",
		}, []string{"action"}),
		FailOpenTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "intake_gate_fail_open_total",
			Help: "Requests allowed because the lockout state could not be read",
		}),
	}
}

func (m *Metrics) IncrementDecision(action string) {
	if m == nil {
		return
	}
	m.DecisionsTotal.WithLabelValues(action).Inc()
}

func (m *Metrics) IncrementFailOpen() {
	if m == nil {
		return
	}
	m.FailOpenTotal.Inc()
}
