// Package kernel implements the covariance functions used by package gp.
//
// Every Kernel stores its hyperparameters in log-space (so unconstrained
// gradient-ascent fitters never need to enforce positivity) and reports a
// noise-augmented covariance for assembling a Gram matrix: CovNoisy(x, y, i,
// j) equals Cov(x, y) plus (sigma_n^2 + jitter) on the diagonal (i == j).
package kernel

import "math"

// Jitter is added to every diagonal Gram-matrix entry for numerical
// positive-semidefiniteness, independent of the configured noise variance.
const Jitter = 1e-8

// Kernel is a covariance function k(x,y) together with its gradient with
// respect to its own log-space hyperparameters.
type Kernel interface {
	// Cov returns k(x,y), the noise-free covariance.
	Cov(x, y []float64) float64

	// CovNoisy returns Cov(x,y) plus (sigma_n^2 + Jitter) when i == j, zero
	// otherwise. i and j identify the rows of the Gram matrix being
	// assembled so the diagonal can be recognized without an x==y test.
	CovNoisy(x, y []float64, i, j int) float64

	// Params returns the current hyperparameters in log-space. The slice is
	// owned by the caller; mutating it has no effect on the kernel.
	Params() []float64

	// SetParams installs new hyperparameters, replacing the slice returned
	// by Params. Panics if len(theta) != NumParams().
	SetParams(theta []float64)

	// NumParams returns len(Params()).
	NumParams() int

	// Gradient returns d k(x,y) / d theta for each log-space hyperparameter,
	// in the same order as Params, excluding the noise hyperparameter; the
	// noise entry is only appended by GradientNoisy.
	Gradient(x, y []float64) []float64

	// GradientNoisy is Gradient augmented, when OptimizeNoise is true, with a
	// trailing d(sigma_n^2 delta_ij)/d(log sigma_n^2) = sigma_n^2 entry when
	// i == j (0 otherwise), matching the layout of Params/SetParams.
	GradientNoisy(x, y []float64, i, j int) []float64

	// Noise returns the current noise variance sigma_n^2.
	Noise() float64

	// OptimizeNoise reports whether Params/SetParams/GradientNoisy include
	// the noise hyperparameter as a trailing entry.
	OptimizeNoise() bool
}

// noiseParam is embedded by every concrete kernel to share the noise
// bookkeeping (log sigma_n, optimize-noise flag) and the CovNoisy/
// GradientNoisy plumbing that is otherwise identical across kernels.
type noiseParam struct {
	logNoise float64 // log(sigma_n^2)/2 is NOT used; we store log(sigma_n^2) directly
	optimize bool
}

func newNoiseParam(noise float64, optimizeNoise bool) noiseParam {
	return noiseParam{logNoise: math.Log(noise), optimize: optimizeNoise}
}

func (n noiseParam) sigmaSq() float64 { return math.Exp(n.logNoise) }

func (n noiseParam) diag(i, j int) float64 {
	if i != j {
		return 0
	}
	return n.sigmaSq() + Jitter
}

func (n *noiseParam) setNoise(logNoise float64) { n.logNoise = logNoise }

func (n noiseParam) noiseGradEntry(i, j int) float64 {
	if i != j {
		return 0
	}
	// d(sigma_n^2)/d(log sigma_n^2) = sigma_n^2
	return n.sigmaSq()
}
