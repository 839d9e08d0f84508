package observability_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/elementium/pkg/character"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/formula"
	"github.com/aretw0/elementium/pkg/observability"
	"github.com/aretw0/elementium/pkg/registry"
)

func TestMetrics_CountEvaluations(t *testing.T) {
	promReg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(promReg)
	require.NoError(t, err)

	reg := registry.New()
	reg.MustRegister(
		&domain.Descriptor{Type: domain.TypeVariable, ID: "level", Name: "Level", Formula: formula.Const(3)},
		&domain.Descriptor{Type: domain.TypeVariable, ID: "hp", Name: "HP", Formula: formula.Mul(formula.Var[int]("level"), formula.Const(6))},
		&domain.Descriptor{Type: domain.TypeVariable, ID: "loop", Name: "Loop", Formula: formula.Var[int]("loop")},
	)
	c, err := character.New(reg, nil, character.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)

	_, err = c.GetVariable("hp")
	require.NoError(t, err)
	_, err = c.GetVariable("hp")
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues("hp")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Evaluations.WithLabelValues("level")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Failures.WithLabelValues("hp")))

	_, err = c.GetVariable("loop")
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Cycles.WithLabelValues("loop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Failures.WithLabelValues("loop")))
}

func TestNewMetrics_Twice(t *testing.T) {
	promReg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(promReg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(promReg)
	assert.NoError(t, err)
}

func TestCombine(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnVariableEnter: func(*domain.VariableEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{OnVariableEnter: func(*domain.VariableEvent) { order = append(order, "b") }}

	hooks := observability.Combine(a, b)
	hooks.OnVariableEnter(&domain.VariableEvent{VariableID: "x"})

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Nil(t, hooks.OnVariableLeave)
}
