// Package stopcrit implements the stopping criteria of spec §4.10: composable
// predicates evaluated once per outer-loop iteration; any criterion
// returning true stops the optimization.
package stopcrit

import "github.com/gonum-contrib/bayesopt/gp"

// State is the subset of orchestrator state a stopping criterion needs.
type State struct {
	CurrentIteration int
	TotalIterations  int
	BestObservation  float64
	Model            *gp.MultiGP
}

// Criterion decides whether the outer loop should stop given the current
// orchestrator state.
type Criterion interface {
	Stop(s State) bool
}
