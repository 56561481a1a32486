package sampling

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// RandomSamplingGridConfig configures RandomSamplingGrid (spec §6
// init_random_grid.{samples,bins}).
type RandomSamplingGridConfig struct {
	Samples int
	Bins    int
}

// DefaultRandomSamplingGridConfig returns init_random_grid's documented
// defaults (samples=10, bins=5).
func DefaultRandomSamplingGridConfig() RandomSamplingGridConfig {
	return RandomSamplingGridConfig{Samples: 10, Bins: 5}
}

// RandomSamplingGrid draws Samples points uniformly at random from the full
// bins^d grid over [0,1]^d (spec §4.9), sampling without replacement when
// the grid is large enough to support it.
type RandomSamplingGrid struct {
	Config RandomSamplingGridConfig
}

// NewRandomSamplingGrid returns a RandomSamplingGrid strategy.
func NewRandomSamplingGrid(cfg RandomSamplingGridConfig) *RandomSamplingGrid {
	return &RandomSamplingGrid{Config: cfg}
}

func (s *RandomSamplingGrid) Points(dimIn int, rng *numutil.RNG) [][]float64 {
	grid := gridPoints(dimIn, s.Config.Bins)
	n := s.Config.Samples

	if n > len(grid) {
		// Fewer grid points than samples: draw with replacement.
		pts := make([][]float64, n)
		for i := range pts {
			pts[i] = grid[rng.Intn(len(grid))]
		}
		return pts
	}

	perm := rng.Perm(len(grid))
	pts := make([][]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = grid[perm[i]]
	}
	return pts
}
