package inneropt

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// RandomPoint returns a uniform random point in [0,1]^d, ignoring f and x0
// entirely. It is a control baseline (spec §4.6), useful for A/B-testing
// acquisition-driven search against blind random search.
type RandomPoint struct {
	RNG *numutil.RNG
}

// NewRandomPoint returns a RandomPoint optimizer drawing from rng.
func NewRandomPoint(rng *numutil.RNG) *RandomPoint { return &RandomPoint{RNG: rng} }

func (r *RandomPoint) Maximize(f ObjectiveFunc, x0 []float64, bounded bool) ([]float64, error) {
	x := make([]float64, len(x0))
	r.RNG.UniformVector(x)
	return x, nil
}
