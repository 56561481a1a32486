package gp

import (
	"math"
	"testing"

	"github.com/gonum-contrib/bayesopt/kernel"
	"github.com/gonum-contrib/bayesopt/mean"
)

func newTestMultiGP(dimOut int) *MultiGP {
	return NewMultiGPUniform(2, dimOut,
		func() kernel.Kernel { return kernel.NewMatern52(0.3, 1.0, 0.01, false) },
		func() mean.Mean { return mean.NewNullFunction(1) })
}

func TestMultiGPPredictShape(t *testing.T) {
	m := newTestMultiGP(3)
	m.Compute([][]float64{{0.1, 0.2}, {0.5, 0.6}}, [][]float64{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}})
	mu, sigma2 := m.Predict([]float64{0.3, 0.3})
	if len(mu) != 3 || len(sigma2) != 3 {
		t.Fatalf("Predict returned lengths (%d,%d), want (3,3)", len(mu), len(sigma2))
	}
	for i := range mu {
		if math.IsNaN(mu[i]) || math.IsNaN(sigma2[i]) {
			t.Errorf("output %d: mu=%v sigma2=%v, want finite", i, mu[i], sigma2[i])
		}
	}
}

func TestMultiGPAddSampleForwardsPerOutput(t *testing.T) {
	m := newTestMultiGP(2)
	m.Compute([][]float64{{0.1, 0.2}}, [][]float64{{0.1, 0.2}})
	if err := m.AddSample([]float64{0.5, 0.5}, []float64{0.3, 0.4}); err != nil {
		t.Fatalf("AddSample: %v", err)
	}
	for o := 0; o < 2; o++ {
		if m.Output(o).NumSamples() != 2 {
			t.Errorf("output %d: NumSamples() = %d, want 2", o, m.Output(o).NumSamples())
		}
	}
}
