package mean

import (
	"math"
	"testing"

	"github.com/gonum-contrib/bayesopt/kernel"
)

type fakeCtx struct {
	meanObs []float64
	k       kernel.Kernel
}

func (c fakeCtx) MeanObservation() []float64 { return c.meanObs }
func (c fakeCtx) Kernel() kernel.Kernel      { return c.k }

func TestNullFunctionIsZero(t *testing.T) {
	m := NewNullFunction(3)
	out := m.Eval([]float64{0.1, 0.2}, fakeCtx{})
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}

func TestConstantBroadcasts(t *testing.T) {
	m := NewConstant(2, 3.5)
	out := m.Eval([]float64{0.1}, fakeCtx{})
	if out[0] != 3.5 || out[1] != 3.5 {
		t.Errorf("out = %v, want [3.5 3.5]", out)
	}
}

func TestDataReadsContext(t *testing.T) {
	m := NewData()
	ctx := fakeCtx{meanObs: []float64{1, 2, 3}}
	out := m.Eval(nil, ctx)
	for i, v := range out {
		if v != ctx.meanObs[i] {
			t.Errorf("out[%d] = %v, want %v", i, v, ctx.meanObs[i])
		}
	}
}

func TestFunctionARDIdentityMatchesInner(t *testing.T) {
	inner := NewConstant(2, 1.0)
	m := NewFunctionARD(2, inner)
	out := m.Eval([]float64{0, 0}, fakeCtx{})
	want := inner.Eval([]float64{0, 0}, fakeCtx{})
	for i := range out {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestFunctionARDGradientShape(t *testing.T) {
	inner := NewConstant(2, 1.0)
	m := NewFunctionARD(2, inner)
	g := m.Gradient([]float64{0, 0}, fakeCtx{})
	r, c := g.Dims()
	if r != 2 || c != m.NumParams() {
		t.Errorf("gradient dims = (%d,%d), want (2,%d)", r, c, m.NumParams())
	}
}
