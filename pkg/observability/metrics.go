package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/elementium/pkg/domain"
)

// Metrics counts and times variable evaluations.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Failures    *prometheus.CounterVec
	Cycles      *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elementium_variable_evaluations_total",
				Help: "Total number of variable evaluations",
			},
			[]string{"variable"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elementium_variable_failures_total",
				Help: "Total number of variable evaluations that returned an error",
			},
			[]string{"variable"},
		),
		Cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "elementium_circular_dependencies_total",
				Help: "Total number of circular dependencies detected, by re-entered variable",
			},
			[]string{"variable"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "elementium_variable_evaluation_seconds",
				Help:    "Variable evaluation duration, including nested variables",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"variable"},
		),
	}

	var err error
	if m.Evaluations, err = register(reg, m.Evaluations); err != nil {
		return nil, err
	}
	if m.Failures, err = register(reg, m.Failures); err != nil {
		return nil, err
	}
	if m.Cycles, err = register(reg, m.Cycles); err != nil {
		return nil, err
	}
	if m.Duration, err = register(reg, m.Duration); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnVariableLeave: func(ev *domain.VariableEvent) {
			m.Evaluations.WithLabelValues(ev.VariableID).Inc()
			m.Duration.WithLabelValues(ev.VariableID).Observe(ev.Duration.Seconds())
			if ev.Err != nil {
				m.Failures.WithLabelValues(ev.VariableID).Inc()
			}
		},
		OnCircularDependency: func(ev *domain.VariableEvent) {
			m.Cycles.WithLabelValues(ev.VariableID).Inc()
		},
	}
}

// Combine merges several hook sets; each callback runs in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	fanout := func(pick func(domain.LifecycleHooks) func(*domain.VariableEvent)) func(*domain.VariableEvent) {
		var fns []func(*domain.VariableEvent)
		for _, h := range hooks {
			if fn := pick(h); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(ev *domain.VariableEvent) {
			for _, fn := range fns {
				fn(ev)
			}
		}
	}
	return domain.LifecycleHooks{
		OnVariableEnter:      fanout(func(h domain.LifecycleHooks) func(*domain.VariableEvent) { return h.OnVariableEnter }),
		OnVariableLeave:      fanout(func(h domain.LifecycleHooks) func(*domain.VariableEvent) { return h.OnVariableLeave }),
		OnCircularDependency: fanout(func(h domain.LifecycleHooks) func(*domain.VariableEvent) { return h.OnCircularDependency }),
	}
}
