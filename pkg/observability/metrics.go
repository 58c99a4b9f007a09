package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gcamargo0/turingo/pkg/domain"
)

// Metrics exposes machine execution counters to Prometheus.
type Metrics struct {
	steps     *prometheus.CounterVec
	halts     *prometheus.CounterVec
	tapeCells *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turingo_steps_total",
				Help: "Total number of transitions applied",
			},
			[]string{"machine"},
		),
		halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turingo_halts_total",
				Help: "Total number of machines that halted cleanly",
			},
			[]string{"machine"},
		),
		tapeCells: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "turingo_tape_cells",
				Help: "Materialized tape cells of the most recent step",
			},
			[]string{"machine"},
		),
	}
	reg.MustRegister(m.steps, m.halts, m.tapeCells)
	return m
}

// Hooks returns lifecycle hooks recording metrics under the given machine
// label. The same Metrics can serve many machines.
func (m *Metrics) Hooks(machine string) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.steps.WithLabelValues(machine).Inc()
			m.tapeCells.WithLabelValues(machine).Set(float64(e.TapeLen))
		},
		OnHalt: func(_ context.Context, _ *domain.HaltEvent) {
			m.halts.WithLabelValues(machine).Inc()
		},
	}
}
