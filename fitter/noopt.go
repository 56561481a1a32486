package fitter

import "github.com/gonum-contrib/bayesopt/gp"

// NoOpt is the null fitter: it is never meant to be invoked by an
// orchestrator whose hp_period disables hyperparameter fitting. Calling Fit
// on it is a programmer error (spec §7 misuse errors), not a recoverable
// condition.
type NoOpt struct{}

func (NoOpt) Fit(g *gp.GP) {
	panic("fitter: NoOpt.Fit invoked; hyperparameter fitting was supposed to be disabled")
}
