package stopcrit

import (
	"testing"

	"github.com/gonum-contrib/bayesopt/gp"
	"github.com/gonum-contrib/bayesopt/inneropt"
	"github.com/gonum-contrib/bayesopt/internal/numutil"
	"github.com/gonum-contrib/bayesopt/kernel"
	"github.com/gonum-contrib/bayesopt/mean"
)

func TestMaxIterations(t *testing.T) {
	c := NewMaxIterations(5)
	if c.Stop(State{CurrentIteration: 4}) {
		t.Error("Stop(4) = true, want false")
	}
	if !c.Stop(State{CurrentIteration: 5}) {
		t.Error("Stop(5) = false, want true")
	}
}

func flatModel(value float64) *gp.MultiGP {
	k := kernel.NewExp(0.3, 1.0, 0.01, false)
	g := gp.New(2, k, mean.NewConstant(2, value))
	m := gp.NewMultiGP(2, []*gp.GP{g})
	m.Compute([][]float64{{0.2, 0.2}}, [][]float64{{value}})
	return m
}

func TestMaxPredictedValueFiresWhenObservationMatchesModel(t *testing.T) {
	m := flatModel(1.0)
	c := NewMaxPredictedValue(0.9, 2, inneropt.NewGridSearch(4), nil, numutil.NewSeededRNG(1))
	if !c.Stop(State{BestObservation: 1.0, Model: m}) {
		t.Error("Stop = false, want true when best_observation matches a flat, fully-explained model")
	}
}

func TestMaxPredictedValuePanicsOnEmptyModel(t *testing.T) {
	k := kernel.NewExp(0.3, 1.0, 0.01, false)
	g := gp.New(2, k, mean.NewNullFunction(2))
	m := gp.NewMultiGP(2, []*gp.GP{g})
	m.Compute(nil, nil)

	c := NewMaxPredictedValue(0.9, 2, nil, nil, nil)
	defer func() {
		if recover() == nil {
			t.Error("Stop did not panic on an empty model, want a misuse panic")
		}
	}()
	c.Stop(State{BestObservation: 0, Model: m})
}

type alwaysFalse struct{}

func (alwaysFalse) Stop(State) bool { return false }

type alwaysTrue struct{}

func (alwaysTrue) Stop(State) bool { return true }

func TestChainAnyOf(t *testing.T) {
	if NewChain(alwaysFalse{}, alwaysFalse{}).Stop(State{}) {
		t.Error("Chain of all-false fired, want false")
	}
	if !NewChain(alwaysFalse{}, alwaysTrue{}).Stop(State{}) {
		t.Error("Chain with one true member did not fire")
	}
}
