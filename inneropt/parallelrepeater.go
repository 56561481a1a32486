package inneropt

import (
	"math"

	"github.com/gonum-contrib/bayesopt/internal/numutil"
)

// ParallelRepeaterConfig configures ParallelRepeater (spec §6
// opt_parallel_repeater.*).
type ParallelRepeaterConfig struct {
	Repeats int
	Epsilon float64
}

// DefaultParallelRepeaterConfig returns opt_parallel_repeater's documented
// defaults.
func DefaultParallelRepeaterConfig() ParallelRepeaterConfig {
	return ParallelRepeaterConfig{Repeats: 10, Epsilon: 0.01}
}

// ParallelRepeater runs a wrapped Optimizer from R perturbed starting points
// (x0 + U(-eps,+eps)^d) and returns the best result by objective value,
// running the R restarts concurrently (spec §4.6, §5).
type ParallelRepeater struct {
	Config ParallelRepeaterConfig
	Inner  Optimizer
	RNG    *numutil.RNG
}

// NewParallelRepeater wraps inner with R perturbed-restart repetition.
func NewParallelRepeater(cfg ParallelRepeaterConfig, inner Optimizer, rng *numutil.RNG) *ParallelRepeater {
	return &ParallelRepeater{Config: cfg, Inner: inner, RNG: rng}
}

func (p *ParallelRepeater) Maximize(f ObjectiveFunc, x0 []float64, bounded bool) ([]float64, error) {
	d := len(x0)
	results := make([][]float64, p.Config.Repeats)
	errs := make([]error, p.Config.Repeats)

	rngs := make([]*numutil.RNG, p.Config.Repeats)
	for i := range rngs {
		rngs[i] = p.RNG.Child()
	}

	// score runs restart i and records its result as a side effect; BestOf
	// then just picks the winning index, so each restart is solved exactly
	// once.
	score := func(i int) float64 {
		start := make([]float64, d)
		for j := 0; j < d; j++ {
			start[j] = x0[j] + rngs[i].Uniform(-p.Config.Epsilon, p.Config.Epsilon)
		}
		if bounded {
			for j := range start {
				if start[j] < 0 {
					start[j] = 0
				} else if start[j] > 1 {
					start[j] = 1
				}
			}
		}
		x, err := p.Inner.Maximize(f, start, bounded)
		results[i] = x
		errs[i] = err
		if err != nil {
			return math.Inf(-1)
		}
		v, _ := f(x, false)
		return v
	}

	best := numutil.BestOf(p.Config.Repeats, score, func(a, b float64) bool { return a > b })
	if errs[best] != nil {
		return nil, errs[best]
	}
	return results[best], nil
}
