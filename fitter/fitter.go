// Package fitter implements the hyperparameter fitters of spec §4.7: they
// maximize a GP's log marginal likelihood (or LOO-CV) over its kernel and/or
// mean hyperparameters using an inneropt.Optimizer, then leave the GP in a
// consistent, recomputed state.
package fitter

import "github.com/gonum-contrib/bayesopt/gp"

// Fitter mutates a GP's hyperparameters in place to (locally) maximize some
// objective derived from its dataset, then ensures the GP's caches are
// refreshed (spec §4.7 "Fitters MUST leave the GP in a consistent state").
type Fitter interface {
	Fit(g *gp.GP)
}
