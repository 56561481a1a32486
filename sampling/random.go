package sampling

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// RandomSamplingConfig configures RandomSampling (spec §6 init_random.samples).
type RandomSamplingConfig struct {
	Samples int
}

// DefaultRandomSamplingConfig returns init_random's documented default
// (samples=10).
func DefaultRandomSamplingConfig() RandomSamplingConfig {
	return RandomSamplingConfig{Samples: 10}
}

// RandomSampling draws Samples i.i.d. uniform points in [0,1]^d.
type RandomSampling struct {
	Config RandomSamplingConfig
}

// NewRandomSampling returns a RandomSampling strategy.
func NewRandomSampling(cfg RandomSamplingConfig) *RandomSampling {
	return &RandomSampling{Config: cfg}
}

func (s *RandomSampling) Points(dimIn int, rng *numutil.RNG) [][]float64 {
	pts := make([][]float64, s.Config.Samples)
	for i := range pts {
		x := make([]float64, dimIn)
		rng.UniformVector(x)
		pts[i] = x
	}
	return pts
}
