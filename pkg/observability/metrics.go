package observability

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/automata/pkg/domain"
)

// Metrics records engine activity as Prometheus collectors.
type Metrics struct {
	Builds         *prometheus.CounterVec
	Steps          *prometheus.CounterVec
	Phases         *prometheus.CounterVec
	Errors         *prometheus.CounterVec
	Configurations *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_builds_total",
				Help: "Total number of engines built",
			},
			[]string{"kind"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_steps_total",
				Help: "Total number of steps by outcome",
			},
			[]string{"kind", "outcome"},
		),
		Phases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_phases_total",
				Help: "Total number of stack machine step phases",
			},
			[]string{"kind", "phase"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automata_errors_total",
				Help: "Total number of failed operations",
			},
			[]string{"kind", "op"},
		),
		Configurations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automata_configurations",
				Help:    "Size of the configuration set after each step",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"kind"},
		),
	}

	if reg == nil {
		return m, nil
	}
	var err error
	if m.Builds, err = register(reg, m.Builds); err != nil {
		return nil, err
	}
	if m.Steps, err = register(reg, m.Steps); err != nil {
		return nil, err
	}
	if m.Phases, err = register(reg, m.Phases); err != nil {
		return nil, err
	}
	if m.Errors, err = register(reg, m.Errors); err != nil {
		return nil, err
	}
	if m.Configurations, err = register(reg, m.Configurations); err != nil {
		return nil, err
	}
	return m, nil
}

// register reuses a collector already registered under the same descriptor.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("failed to register metrics: %w", err)
	}
	return c, nil
}

// Hooks returns engine hooks feeding the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnBuild: func(e *domain.BuildEvent) {
			m.Builds.WithLabelValues(string(e.Kind)).Inc()
		},
		OnStep: func(e *domain.StepEvent) {
			kind := string(e.Kind)
			m.Steps.WithLabelValues(kind, Outcome(e)).Inc()
			m.Configurations.WithLabelValues(kind).Observe(float64(e.Configurations))
		},
		OnPhase: func(e *domain.PhaseEvent) {
			m.Phases.WithLabelValues(string(e.Kind), string(e.Phase)).Inc()
		},
		OnError: func(e *domain.ErrorEvent) {
			m.Errors.WithLabelValues(string(e.Kind), e.Op).Inc()
		},
	}
}

// Outcome classifies a step for the outcome label.
func Outcome(e *domain.StepEvent) string {
	switch {
	case e.Halted:
		return "halted"
	case e.Stuck:
		return "stuck"
	case e.Accepting:
		return "accepting"
	}
	return "rejecting"
}
