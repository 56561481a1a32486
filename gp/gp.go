// Package gp implements the Gaussian Process surrogate model: single-output
// GP (this file), multi-output GP (multigp.go) and sparsified GP
// (sparsegp.go).
package gp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gonum-contrib/bayesopt/internal/numutil"
	"github.com/gonum-contrib/bayesopt/kernel"
	"github.com/gonum-contrib/bayesopt/mean"
)

// maxJitterRetries bounds the number of successively larger jitter additions
// attempted before a Cholesky factorization is declared a fatal numeric
// failure (spec §4.3 step 2).
const maxJitterRetries = 5

// GP is a single-output Gaussian Process surrogate: fit, incrementally
// update, predict mean/variance, and report log marginal likelihood and
// leave-one-out cross-validation log predictive density.
//
// A GP's caches (Cholesky factor, alpha, observation mean) are invalidated
// by any mutation of the dataset or hyperparameters and recomputed lazily on
// the next Compute/AddSample/Recompute call; Predict panics if called before
// the caches have ever been computed (spec §7, misuse errors), while LogLik
// never panics (0 on an empty dataset, -Inf on an invalid cache).
type GP struct {
	dimIn int
	kern  kernel.Kernel
	mn    mean.Mean

	samples      [][]float64
	observations []float64

	chol      mat.Cholesky
	cholValid bool
	alpha     *mat.VecDense
	obsMean   float64

	computed bool
}

// New returns an empty GP over a dimIn-dimensional input domain with the
// given kernel and mean function. Compute or AddSample must be called before
// Predict/LogLik.
func New(dimIn int, k kernel.Kernel, m mean.Mean) *GP {
	return &GP{dimIn: dimIn, kern: k, mn: m}
}

// DimIn returns the input dimensionality.
func (g *GP) DimIn() int { return g.dimIn }

// Kernel returns the GP's kernel, satisfying mean.GPContext.
func (g *GP) Kernel() kernel.Kernel { return g.kern }

// Mean returns the GP's mean function.
func (g *GP) Mean() mean.Mean { return g.mn }

// Samples returns the current dataset's input points. The returned slice
// must not be mutated by the caller.
func (g *GP) Samples() [][]float64 { return g.samples }

// Observations returns the current dataset's scalar observations. The
// returned slice must not be mutated by the caller.
func (g *GP) Observations() []float64 { return g.observations }

// NumSamples returns len(Samples()).
func (g *GP) NumSamples() int { return len(g.samples) }

// MeanObservation returns the empirical mean of the current observations,
// satisfying mean.GPContext. Panics if the dataset is empty.
func (g *GP) MeanObservation() []float64 {
	if len(g.observations) == 0 {
		panic("gp: MeanObservation called on an empty dataset")
	}
	return []float64{g.obsMean}
}

func (g *GP) meanAt(x []float64) float64 {
	if len(g.observations) == 0 {
		return g.mn.Eval(x, emptyCtx{g})[0]
	}
	return g.mn.Eval(x, g)[0]
}

// emptyCtx is the context passed to the mean function while the dataset is
// empty. It forwards both calls to the GP, so mean functions that never
// consult MeanObservation (NullFunction, Constant, FunctionARD-of-those)
// evaluate normally, and a Data mean on an empty GP panics through
// GP.MeanObservation: there is no empirical mean to read (spec §7 misuse).
type emptyCtx struct{ g *GP }

func (e emptyCtx) MeanObservation() []float64 { return e.g.MeanObservation() }
func (e emptyCtx) Kernel() kernel.Kernel      { return e.g.kern }

// Compute fits the GP from scratch on (samples, observations), replacing any
// existing dataset. Panics if the two slices have unequal length.
func (g *GP) Compute(samples [][]float64, observations []float64) {
	if len(samples) != len(observations) {
		panic("gp: Compute called with mismatched samples/observations lengths")
	}
	g.samples = samples
	g.observations = observations
	g.recompute(true, true)
}

// AddSample appends one (x,y) pair and incrementally updates the cached
// Cholesky factor and alpha via a rank-1 extension, falling back to a full
// Recompute if the incremental update is ill-conditioned (spec §4.3).
// Returns an error if y is NaN or Inf; the dataset is left unchanged.
func (g *GP) AddSample(x []float64, y float64) error {
	if numutil.IsNaNOrInf([]float64{y}) {
		return &EvaluationError{X: append([]float64(nil), x...), Y: []float64{y}}
	}
	n := len(g.samples)
	g.samples = append(g.samples, x)
	g.observations = append(g.observations, y)

	if n == 0 || !g.cholValid {
		g.recompute(true, true)
		return nil
	}

	if !g.extendCholesky(x) {
		g.recompute(true, true)
		return nil
	}
	g.obsMean = mean64(g.observations)
	g.recomputeAlpha(true, false)
	return nil
}

// extendCholesky attempts the rank-1 Cholesky extension for a newly
// appended sample at index len(g.samples)-1. Returns false if the extension
// fails (non-PSD after the new row), in which case the caller must fall back
// to a full recompute.
func (g *GP) extendCholesky(xNew []float64) bool {
	n := g.chol.SymmetricDim()
	v := mat.NewVecDense(n+1, nil)
	for i := 0; i < n; i++ {
		v.SetVec(i, g.kern.CovNoisy(g.samples[i], xNew, i, n))
	}
	v.SetVec(n, g.kern.CovNoisy(xNew, xNew, n, n))

	var extended mat.Cholesky
	ok := extended.ExtendVecSym(&g.chol, v)
	if !ok {
		return false
	}
	g.chol = extended
	return true
}

// Recompute rebuilds the cached Cholesky factor and/or observation mean from
// the current dataset. updateObsMean and updateFullKernel let callers skip
// work when only mean-hyperparameters changed (spec §4.3 "recompute modes").
func (g *GP) Recompute(updateObsMean, updateFullKernel bool) {
	g.recompute(updateObsMean, updateFullKernel)
}

func (g *GP) recompute(updateObsMean, updateFullKernel bool) {
	if updateObsMean {
		g.obsMean = mean64(g.observations)
	}
	if updateFullKernel {
		g.rebuildGram()
	}
	g.recomputeAlpha(updateObsMean, updateFullKernel)
	g.computed = true
}

func (g *GP) rebuildGram() {
	n := len(g.samples)
	if n == 0 {
		g.cholValid = false
		return
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, g.kern.CovNoisy(g.samples[i], g.samples[j], i, j))
		}
	}
	jitter := 0.0
	for attempt := 0; attempt <= maxJitterRetries; attempt++ {
		var chol mat.Cholesky
		var a *mat.SymDense = sym
		if jitter > 0 {
			a = addDiag(sym, jitter)
		}
		if ok := chol.Factorize(a); ok {
			g.chol = chol
			g.cholValid = true
			return
		}
		if jitter == 0 {
			jitter = 1e-8
		} else {
			jitter *= 10
		}
	}
	g.cholValid = false
}

func addDiag(sym *mat.SymDense, eps float64) *mat.SymDense {
	n := sym.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := sym.At(i, j)
			if i == j {
				v += eps
			}
			out.SetSym(i, j, v)
		}
	}
	return out
}

func (g *GP) recomputeAlpha(updatedObsMean, updatedKernel bool) {
	n := len(g.samples)
	if n == 0 || !g.cholValid {
		g.alpha = nil
		return
	}
	r := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		r.SetVec(i, g.observations[i]-g.meanAt(g.samples[i]))
	}
	alpha := mat.NewVecDense(n, nil)
	if err := g.chol.SolveVecTo(alpha, r); err != nil {
		g.cholValid = false
		g.alpha = nil
		return
	}
	g.alpha = alpha
}

// Predict returns the posterior mean and variance at x. If the dataset is
// empty, mu = m(x) and sigma2 = k(x,x) (spec §4.3 degenerate case). Panics
// if Compute/AddSample has never been called successfully.
func (g *GP) Predict(x []float64) (mu, sigma2 float64) {
	if !g.computed {
		panic("gp: Predict called before Compute/AddSample")
	}
	n := len(g.samples)
	if n == 0 {
		return g.meanAt(x), g.kern.Cov(x, x)
	}
	if !g.cholValid {
		// A non-PSD Gram matrix leaves predictions undefined; callers that
		// reach here despite LogLik()==-Inf have a programming error.
		panic("gp: Predict called while the Gram matrix cache is invalid")
	}

	kStar := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		kStar.SetVec(i, g.kern.Cov(g.samples[i], x))
	}
	kStarStar := g.kern.Cov(x, x)

	mu = g.meanAt(x) + mat.Dot(kStar, g.alpha)

	v := mat.NewVecDense(n, nil)
	if err := g.chol.SolveVecTo(v, kStar); err != nil {
		return mu, 0
	}
	sigma2 = kStarStar - mat.Dot(kStar, v)
	if sigma2 < 0 {
		sigma2 = 0
	}
	return mu, sigma2
}

// LogLik returns the log marginal likelihood log p(y|X,theta). Returns
// -Inf if the Gram matrix is not positive-semidefinite or the dataset is
// degenerate, so hyperparameter optimizers can reject the step without a
// panic (spec §7).
func (g *GP) LogLik() float64 {
	n := len(g.samples)
	if n == 0 {
		return 0
	}
	if !g.cholValid || g.alpha == nil {
		return math.Inf(-1)
	}
	r := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		r.SetVec(i, g.observations[i]-g.meanAt(g.samples[i]))
	}
	quad := mat.Dot(r, g.alpha)
	logDet := g.chol.LogDet()
	if math.IsNaN(quad) || math.IsNaN(logDet) {
		return math.Inf(-1)
	}
	return -0.5*quad - 0.5*logDet - float64(n)/2*math.Log(2*math.Pi)
}

// LogLikGradKernel returns d log p(y|X,theta_k) / d theta_k, in the order of
// g.kern.Params(). Returns nil if the cache is invalid.
func (g *GP) LogLikGradKernel() []float64 {
	n := len(g.samples)
	if n == 0 || !g.cholValid {
		return nil
	}
	p := g.kern.NumParams()
	grad := make([]float64, p)

	kInv := mat.NewSymDense(n, nil)
	if err := g.chol.InverseTo(kInv); err != nil {
		return nil
	}

	// tr((alpha alpha^T - Kinv) dK/dtheta) summed over all entries, using
	// symmetry to halve the off-diagonal work.
	dK := make([]*mat.Dense, p)
	for pi := 0; pi < p; pi++ {
		dK[pi] = mat.NewDense(n, n, nil)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			gij := g.kern.GradientNoisy(g.samples[i], g.samples[j], i, j)
			for pi := 0; pi < p; pi++ {
				dK[pi].Set(i, j, gij[pi])
				if i != j {
					dK[pi].Set(j, i, gij[pi])
				}
			}
		}
	}
	for pi := 0; pi < p; pi++ {
		var tr float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				coef := g.alpha.AtVec(i)*g.alpha.AtVec(j) - kInv.At(i, j)
				tr += coef * dK[pi].At(j, i)
			}
		}
		grad[pi] = 0.5 * tr
	}
	return grad
}

// LogLikGradMean returns d log p(y|X,theta_m) / d theta_m = alpha^T
// d(m(X))/d theta_m, in the order of g.mn.Params(). Only the residual
// vector depends on theta_m, so this does not need the Cholesky factor to
// change (spec §4.7 MeanLF note).
func (g *GP) LogLikGradMean() []float64 {
	n := len(g.samples)
	p := g.mn.NumParams()
	if n == 0 || p == 0 || !g.cholValid {
		return make([]float64, p)
	}
	grad := make([]float64, p)
	for i := 0; i < n; i++ {
		dm := g.mn.Gradient(g.samples[i], g)
		if dm == nil {
			continue
		}
		// dm is dimOut(=1) x p; residual is (y - m(x_i)), so d logp/dtheta =
		// alpha_i * dm_row.
		for pi := 0; pi < p; pi++ {
			grad[pi] += g.alpha.AtVec(i) * dm.At(0, pi)
		}
	}
	return grad
}

// LOOCV returns the sum of leave-one-out log predictive densities
// (Rasmussen & Williams §5.4.2), using the cached alpha and a K^-1 computed
// from the cached Cholesky factor on each call.
func (g *GP) LOOCV() float64 {
	n := len(g.samples)
	if n == 0 || !g.cholValid {
		return math.Inf(-1)
	}
	kInv := mat.NewSymDense(n, nil)
	if err := g.chol.InverseTo(kInv); err != nil {
		return math.Inf(-1)
	}
	var sum float64
	for i := 0; i < n; i++ {
		kii := kInv.At(i, i)
		if kii <= 0 {
			return math.Inf(-1)
		}
		mu := g.observations[i] - g.alpha.AtVec(i)/kii
		sigma2 := 1 / kii
		d := g.observations[i] - mu
		sum += -0.5*math.Log(2*math.Pi*sigma2) - 0.5*d*d/sigma2
	}
	return sum
}

func mean64(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var s float64
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

// EvaluationError reports that an observation passed to AddSample was NaN or
// Inf; the caller's dataset is left unchanged (spec §7).
type EvaluationError struct {
	X []float64
	Y []float64
}

func (e *EvaluationError) Error() string {
	return "gp: evaluation produced a NaN or Inf observation"
}
