// Package mean implements the prior mean functions m(x) used by package gp.
package mean

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gonum-contrib/bayesopt/kernel"
)

// GPContext is the read-only view a Mean needs of its owning GP, replacing a
// GP<->Mean back-pointer with a value passed at call time (see SPEC_FULL.md
// §4.2 / §9 on the cyclic-callback redesign).
type GPContext interface {
	// MeanObservation returns the empirical mean of the current dataset's
	// observations (length dim_out). Panics if the dataset is empty.
	MeanObservation() []float64
	// Kernel returns the GP's kernel, for mean functions whose inner
	// transform depends on it (none of the builtin means do; it is exposed
	// for symmetry with MeanObservation and for composed means built by
	// callers).
	Kernel() kernel.Kernel
}

// Mean is a prior mean function m(x) in R^dim_out, together with its
// gradient with respect to its own hyperparameters.
type Mean interface {
	// Eval returns m(x) given the current GP context.
	Eval(x []float64, ctx GPContext) []float64

	// Params returns the current hyperparameters. The slice is owned by the
	// caller.
	Params() []float64

	// SetParams installs new hyperparameters. Panics if the length does not
	// match NumParams.
	SetParams(theta []float64)

	// NumParams returns len(Params()).
	NumParams() int

	// Gradient returns d m(x) / d theta as a dim_out x NumParams matrix; nil
	// if NumParams() == 0.
	Gradient(x []float64, ctx GPContext) *mat.Dense
}
