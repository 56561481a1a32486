package kernel

import (
	"math"

	"github.com/gonum-contrib/bayesopt/internal/numutil"
)

// Exp is the isotropic squared-exponential kernel
//
//	k(x,y) = sigma^2 * exp(-||x-y||^2 / (2*l^2))
//
// with hyperparameters (log l, log sqrt(sigma^2)), plus an optional trailing
// noise hyperparameter.
type Exp struct {
	logL     float64
	logSqrtS float64
	noiseParam
}

// NewExp returns an Exp kernel with the given length scale and signal
// variance (not log-space — this constructor takes the natural parameters
// and converts).
func NewExp(l, sigmaSq, noise float64, optimizeNoise bool) *Exp {
	return &Exp{
		logL:       math.Log(l),
		logSqrtS:   0.5 * math.Log(sigmaSq),
		noiseParam: newNoiseParam(noise, optimizeNoise),
	}
}

func (k *Exp) sigmaSq() float64 { return math.Exp(2 * k.logSqrtS) }
func (k *Exp) l() float64       { return math.Exp(k.logL) }

func (k *Exp) Cov(x, y []float64) float64 {
	l := k.l()
	d2 := numutil.SquaredDistance(x, y)
	return k.sigmaSq() * math.Exp(-d2/(2*l*l))
}

func (k *Exp) CovNoisy(x, y []float64, i, j int) float64 {
	return k.Cov(x, y) + k.diag(i, j)
}

func (k *Exp) Params() []float64 {
	p := []float64{k.logL, k.logSqrtS}
	if k.optimize {
		p = append(p, k.logNoise)
	}
	return p
}

func (k *Exp) NumParams() int {
	if k.optimize {
		return 3
	}
	return 2
}

func (k *Exp) SetParams(theta []float64) {
	if len(theta) != k.NumParams() {
		panic("kernel: wrong number of parameters for Exp")
	}
	k.logL = theta[0]
	k.logSqrtS = theta[1]
	if k.optimize {
		k.setNoise(theta[2])
	}
}

// Gradient returns d k(x,y) / d(log l, log sqrt(sigma^2)).
func (k *Exp) Gradient(x, y []float64) []float64 {
	l := k.l()
	d2 := numutil.SquaredDistance(x, y)
	kv := k.sigmaSq() * math.Exp(-d2/(2*l*l))
	dLogL := kv * d2 / (l * l)
	dLogS := 2 * kv
	return []float64{dLogL, dLogS}
}

func (k *Exp) GradientNoisy(x, y []float64, i, j int) []float64 {
	g := k.Gradient(x, y)
	if k.optimize {
		g = append(g, k.noiseGradEntry(i, j))
	}
	return g
}

func (k *Exp) Noise() float64      { return k.noiseParam.sigmaSq() }
func (k *Exp) OptimizeNoise() bool { return k.optimize }
