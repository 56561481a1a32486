package sampling

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// GridSamplingConfig configures GridSampling (spec §6 init_grid.bins).
type GridSamplingConfig struct {
	Bins int
}

// DefaultGridSamplingConfig returns init_grid's documented default (bins=5).
func DefaultGridSamplingConfig() GridSamplingConfig { return GridSamplingConfig{Bins: 5} }

// GridSampling evaluates the full bins^d grid over [0,1]^d (spec §4.9).
type GridSampling struct {
	Config GridSamplingConfig
}

// NewGridSampling returns a GridSampling strategy.
func NewGridSampling(cfg GridSamplingConfig) *GridSampling { return &GridSampling{Config: cfg} }

func (s *GridSampling) Points(dimIn int, rng *numutil.RNG) [][]float64 {
	return gridPoints(dimIn, s.Config.Bins)
}

// gridPoints enumerates the full bins^d grid over [0,1]^d via an odometer,
// the same incrementing scheme inneropt.GridSearch uses to walk the grid.
func gridPoints(dimIn, bins int) [][]float64 {
	if bins < 1 {
		bins = 1
	}
	idx := make([]int, dimIn)
	var pts [][]float64
	for {
		x := make([]float64, dimIn)
		for i := 0; i < dimIn; i++ {
			if bins == 1 {
				x[i] = 0.5
			} else {
				x[i] = float64(idx[i]) / float64(bins-1)
			}
		}
		pts = append(pts, x)

		pos := dimIn - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < bins {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return pts
}
