package gp

import (
	"math"

	"github.com/gonum-contrib/bayesopt/internal/numutil"
	"github.com/gonum-contrib/bayesopt/kernel"
	"github.com/gonum-contrib/bayesopt/mean"
)

// MultiGP wraps dimOut independent single-output GPs sharing the same input
// dimension behind one multi-output interface (spec §4.4). Compute/Predict/
// AddSample fan out per output across a bounded worker pool.
type MultiGP struct {
	dimIn, dimOut int
	gps           []*GP
}

// NewMultiGP builds a MultiGP from dimOut already-constructed, independent
// per-output GPs (each with its own kernel and mean — they need not share
// hyperparameters).
func NewMultiGP(dimIn int, gps []*GP) *MultiGP {
	return &MultiGP{dimIn: dimIn, dimOut: len(gps), gps: gps}
}

// NewMultiGPUniform builds a MultiGP of dimOut outputs, constructing each
// constituent GP with a fresh copy of kernelFactory()/meanFactory() so that
// hyperparameters are not accidentally shared between outputs.
func NewMultiGPUniform(dimIn, dimOut int, kernelFactory func() kernel.Kernel, meanFactory func() mean.Mean) *MultiGP {
	gps := make([]*GP, dimOut)
	for i := range gps {
		gps[i] = New(dimIn, kernelFactory(), meanFactory())
	}
	return NewMultiGP(dimIn, gps)
}

// DimIn returns the shared input dimensionality.
func (m *MultiGP) DimIn() int { return m.dimIn }

// DimOut returns the number of independent outputs.
func (m *MultiGP) DimOut() int { return m.dimOut }

// Output returns the i-th constituent GP.
func (m *MultiGP) Output(i int) *GP { return m.gps[i] }

// NumSamples returns the number of samples held by the constituent GPs (they
// are always kept in lockstep by Compute/AddSample).
func (m *MultiGP) NumSamples() int {
	if m.dimOut == 0 {
		return 0
	}
	return m.gps[0].NumSamples()
}

// Compute fits all dimOut GPs against the shared samples and per-output
// column of observations (each row of observations has length dimOut).
func (m *MultiGP) Compute(samples [][]float64, observations [][]float64) {
	cols := make([][]float64, m.dimOut)
	for o := range cols {
		cols[o] = make([]float64, len(observations))
	}
	for i, row := range observations {
		for o := 0; o < m.dimOut; o++ {
			cols[o][i] = row[o]
		}
	}
	numutil.ParallelFor(m.dimOut, func(o int) {
		m.gps[o].Compute(samples, cols[o])
	})
}

// AddSample forwards (x,y) to each constituent GP in parallel, y[o] to output
// o. An output whose observation is NaN/Inf rejects it and is left
// unchanged, while the other outputs keep the new sample (no rollback);
// AddSample then returns the EvaluationError of the lowest such output.
// Callers must treat an error from AddSample as fatal for the current
// dataset and should have validated y with numutil.IsNaNOrInf before calling
// (the orchestrator does this).
func (m *MultiGP) AddSample(x []float64, y []float64) error {
	if len(y) != m.dimOut {
		panic("gp: MultiGP.AddSample called with wrong observation length")
	}
	errs := make([]error, m.dimOut)
	numutil.ParallelFor(m.dimOut, func(o int) {
		errs[o] = m.gps[o].AddSample(x, y[o])
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Predict returns the posterior mean and variance vectors (length dimOut)
// at x, computed in parallel across outputs.
func (m *MultiGP) Predict(x []float64) (mu, sigma2 []float64) {
	mu = make([]float64, m.dimOut)
	sigma2 = make([]float64, m.dimOut)
	numutil.ParallelFor(m.dimOut, func(o int) {
		mu[o], sigma2[o] = m.gps[o].Predict(x)
	})
	return mu, sigma2
}

// LogLik returns the sum of per-output log marginal likelihoods, or -Inf if
// any output's is -Inf.
func (m *MultiGP) LogLik() float64 {
	var sum float64
	for _, g := range m.gps {
		ll := g.LogLik()
		if math.IsInf(ll, -1) {
			return math.Inf(-1)
		}
		sum += ll
	}
	return sum
}
