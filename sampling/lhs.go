package sampling

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// LHSConfig configures LHS (spec §6 init_lhs.samples).
type LHSConfig struct {
	Samples int
}

// DefaultLHSConfig returns init_lhs's documented default (samples=10).
func DefaultLHSConfig() LHSConfig { return LHSConfig{Samples: 10} }

// LHS generates Samples points via Latin Hypercube sampling in [0,1]^d
// (spec §4.9): each axis is partitioned into Samples strata; within a
// stratum a point gets a uniform offset, and each axis's stratum
// assignment is permuted independently of the others so that the marginal
// projection onto any single axis visits every stratum exactly once.
type LHS struct {
	Config LHSConfig
}

// NewLHS returns an LHS strategy.
func NewLHS(cfg LHSConfig) *LHS { return &LHS{Config: cfg} }

func (s *LHS) Points(dimIn int, rng *numutil.RNG) [][]float64 {
	n := s.Config.Samples
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, dimIn)
	}
	stride := 1.0 / float64(n)
	for d := 0; d < dimIn; d++ {
		perm := rng.Perm(n)
		for i := 0; i < n; i++ {
			stratum := perm[i]
			pts[i][d] = (float64(stratum) + rng.Float64()) * stride
		}
	}
	return pts
}
