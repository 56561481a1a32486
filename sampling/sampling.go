// Package sampling implements the initialization strategies of spec §4.9:
// strategies that generate candidate points in [0,1]^d before the main
// optimization loop starts. The orchestrator evaluates the objective at each
// generated point and calls AddSample, aborting on the first NaN/Inf
// observation (spec §4.9's closing note); Init itself is pure point
// generation with no knowledge of the objective.
package sampling

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// Init generates the initial design for a dimIn-dimensional search space
// in [0,1]^dimIn.
type Init interface {
	Points(dimIn int, rng *numutil.RNG) [][]float64
}
