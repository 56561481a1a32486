package fitter

import (
	"github.com/gonum-contrib/bayesopt/gp"
	"github.com/gonum-contrib/bayesopt/internal/numutil"
)

// MultiGPParallelLF applies a per-output Fitter to each constituent GP of a
// gp.MultiGP concurrently (spec §4.7).
type MultiGPParallelLF struct {
	// PerOutput builds the Fitter used for output i; called once per Fit.
	PerOutput func(i int) Fitter
}

// NewMultiGPParallelLF returns a MultiGPParallelLF using the same kind of
// Fitter (as built by newFitter) for every output.
func NewMultiGPParallelLF(newFitter func() Fitter) *MultiGPParallelLF {
	return &MultiGPParallelLF{PerOutput: func(i int) Fitter { return newFitter() }}
}

// Fit fits each of m's constituent GPs in parallel.
func (f *MultiGPParallelLF) Fit(m *gp.MultiGP) {
	numutil.ParallelFor(m.DimOut(), func(i int) {
		f.PerOutput(i).Fit(m.Output(i))
	})
}
