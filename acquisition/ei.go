package acquisition

import (
	"math"
	"sync"

	"github.com/gonum-contrib/bayesopt/gp"
	"gonum.org/v1/gonum/stat/distuv"
)

// EIConfig configures EI (spec §6 acqui_ei.jitter).
type EIConfig struct {
	Jitter float64
}

// DefaultEIConfig returns acqui_ei's documented default (jitter=0).
func DefaultEIConfig() EIConfig { return EIConfig{Jitter: 0} }

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// EI is the Expected Improvement acquisition (spec §4.8):
//
//	f+ = max_i agg(mu(x_i))   (cached, refreshed when nb_samples changes)
//	X  = agg(mu(x)) - f+ - jitter
//	Z  = X / sigma
//	EI = X*Phi(Z) + sigma*phi(Z)
//
// EI is 0 wherever sigma is degenerate or the model holds no samples yet.
// EI has no gradient; Eval always returns a nil grad.
type EI struct {
	Config EIConfig
	Model  *gp.MultiGP

	mu       sync.Mutex // guards the f+ cache below
	cachedN  int
	cachedFP float64
	hasCache bool
}

// NewEI binds an EI acquisition function to model.
func NewEI(cfg EIConfig, model *gp.MultiGP) *EI {
	return &EI{Config: cfg, Model: model}
}

func (e *EI) Eval(x []float64, agg Aggregator, wantGrad bool) (float64, []float64) {
	n := e.Model.NumSamples()
	if n == 0 {
		return 0, nil
	}
	fPlus := e.bestSoFar(n, agg)

	mu, sigma2 := e.Model.Predict(x)
	sigma := math.Sqrt(math.Max(sigma2Agg(sigma2, agg, mu), 0))
	if sigma < 1e-10 {
		return 0, nil
	}

	val := agg(mu) - fPlus - e.Config.Jitter
	z := val / sigma
	value := val*standardNormal.CDF(z) + sigma*standardNormal.Prob(z)
	return value, nil
}

// bestSoFar returns the cached f+, recomputing it by scanning the model's
// training inputs whenever nb_samples has changed since the last call
// (spec §4.3): f+ = max_i agg(mu(x_i)), the aggregated posterior mean at
// each training point, not the raw stored observation, which can differ
// from mu(x_i) under non-zero kernel noise or a non-null mean. The cache is
// guarded by a mutex so that a single *EI can be evaluated concurrently (as
// inneropt.ParallelRepeater does) with one writer at a time.
func (e *EI) bestSoFar(n int, agg Aggregator) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.hasCache && e.cachedN == n {
		return e.cachedFP
	}
	samples := e.Model.Output(0).Samples()
	best := math.Inf(-1)
	for i := 0; i < n; i++ {
		mu, _ := e.Model.Predict(samples[i])
		if v := agg(mu); v > best {
			best = v
		}
	}
	e.cachedN = n
	e.cachedFP = best
	e.hasCache = true
	return best
}
