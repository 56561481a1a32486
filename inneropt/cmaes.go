package inneropt

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"

	"github.com/gonum-contrib/bayesopt/internal/numutil"
)

// CMAESConfig configures the CMA-ES-backed external-solver adapter (spec §6
// opt_nlopt*, generalized: this library ships a real gradient-free global
// solver rather than only describing the adapter contract).
type CMAESConfig struct {
	Iterations     int
	FuncTolerance  float64 // <0 disables
	XRelTolerance  float64 // not passed to the solver; Maximize ignores it
	Population     int     // 0 uses optimize.CmaEsChol's own default
	InitStepSize   float64 // 0 uses optimize.CmaEsChol's own default
}

// DefaultCMAESConfig returns opt_nlopt*'s documented defaults, adapted to
// the CMA-ES-Chol knobs available on gonum.org/v1/gonum/optimize.CmaEsChol.
func DefaultCMAESConfig() CMAESConfig {
	return CMAESConfig{Iterations: 500, FuncTolerance: -1, XRelTolerance: -1}
}

// CMAESSolver satisfies the external-solver contract of spec §4.6/§6 using
// gonum's own covariance-matrix-adaptation evolution strategy
// (optimize.CmaEsChol) as the opaque (f, x0, bounded) -> x* service: a real,
// already-vendored gradient-free global optimizer standing in for a bespoke
// NLP binding (DIRECT, CMA-ES, ...). Any non-fatal numeric error from the
// solver is wrapped in SolverError and the best point found so far is
// returned, per spec §7's solver-error recovery policy.
type CMAESSolver struct {
	Config CMAESConfig
	RNG    *numutil.RNG
}

// NewCMAESSolver returns a CMAESSolver with the given configuration.
func NewCMAESSolver(cfg CMAESConfig, rng *numutil.RNG) *CMAESSolver {
	return &CMAESSolver{Config: cfg, RNG: rng}
}

// SolverError wraps a recoverable error surfaced by an external-solver
// adapter; Maximize still returns the best point found so far alongside it.
type SolverError struct {
	Cause error
}

func (e *SolverError) Error() string { return fmt.Sprintf("inneropt: solver error: %v", e.Cause) }
func (e *SolverError) Unwrap() error { return e.Cause }

func (c *CMAESSolver) Maximize(f ObjectiveFunc, x0 []float64, bounded bool) ([]float64, error) {
	problem := optimize.Problem{
		// optimize.Minimize minimizes; negate to maximize f, and clip to
		// [0,1]^d inside the evaluated function when bounded, matching
		// every other optimizer in this package.
		Func: func(x []float64) float64 {
			eval := x
			if bounded {
				eval = append([]float64(nil), x...)
				numutil.ClipUnit(eval)
			}
			v, _ := f(eval, false)
			return -v
		},
	}

	method := &optimize.CmaEsChol{
		InitStepSize: c.Config.InitStepSize,
		Population:   c.Config.Population,
		Src:          nil,
	}

	settings := optimize.DefaultSettingsGlobal()
	if c.Config.Iterations > 0 {
		settings.MajorIterations = c.Config.Iterations
	}
	if c.Config.FuncTolerance > 0 {
		settings.FunctionConverge.Absolute = c.Config.FuncTolerance
	}

	result, err := optimize.Minimize(problem, append([]float64(nil), x0...), settings, method)
	if err != nil {
		best := x0
		if result != nil && result.X != nil {
			best = result.X
		}
		if bounded {
			best = append([]float64(nil), best...)
			numutil.ClipUnit(best)
		}
		return best, &SolverError{Cause: err}
	}

	x := result.X
	if bounded {
		x = append([]float64(nil), x...)
		numutil.ClipUnit(x)
	}
	return x, nil
}
