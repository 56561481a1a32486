package kernel

import (
	"math"

	"github.com/gonum-contrib/bayesopt/internal/numutil"
)

// Matern32 is the Matern 3/2 kernel:
//
//	k(x,y) = sigma^2 * (1 + sqrt(3)*d/l) * exp(-sqrt(3)*d/l),  d = ||x-y||
type Matern32 struct {
	logL     float64
	logSqrtS float64
	noiseParam
}

func NewMatern32(l, sigmaSq, noise float64, optimizeNoise bool) *Matern32 {
	return &Matern32{
		logL:       math.Log(l),
		logSqrtS:   0.5 * math.Log(sigmaSq),
		noiseParam: newNoiseParam(noise, optimizeNoise),
	}
}

func (k *Matern32) sigmaSq() float64 { return math.Exp(2 * k.logSqrtS) }
func (k *Matern32) l() float64       { return math.Exp(k.logL) }

func (k *Matern32) Cov(x, y []float64) float64 {
	d := math.Sqrt(numutil.SquaredDistance(x, y))
	r := math.Sqrt3 * d / k.l()
	return k.sigmaSq() * (1 + r) * math.Exp(-r)
}

func (k *Matern32) CovNoisy(x, y []float64, i, j int) float64 {
	return k.Cov(x, y) + k.diag(i, j)
}

func (k *Matern32) Params() []float64 {
	p := []float64{k.logL, k.logSqrtS}
	if k.optimize {
		p = append(p, k.logNoise)
	}
	return p
}

func (k *Matern32) NumParams() int {
	if k.optimize {
		return 3
	}
	return 2
}

func (k *Matern32) SetParams(theta []float64) {
	if len(theta) != k.NumParams() {
		panic("kernel: wrong number of parameters for Matern32")
	}
	k.logL = theta[0]
	k.logSqrtS = theta[1]
	if k.optimize {
		k.setNoise(theta[2])
	}
}

func (k *Matern32) Gradient(x, y []float64) []float64 {
	d := math.Sqrt(numutil.SquaredDistance(x, y))
	l := k.l()
	r := math.Sqrt3 * d / l
	expTerm := math.Exp(-r)
	sigmaSq := k.sigmaSq()
	// d k / d(log l): r depends on l as 1/l, so d r/d(log l) = -r.
	dLogL := sigmaSq * expTerm * r * r
	dLogS := 2 * sigmaSq * (1 + r) * expTerm
	return []float64{dLogL, dLogS}
}

func (k *Matern32) GradientNoisy(x, y []float64, i, j int) []float64 {
	g := k.Gradient(x, y)
	if k.optimize {
		g = append(g, k.noiseGradEntry(i, j))
	}
	return g
}

func (k *Matern32) Noise() float64      { return k.noiseParam.sigmaSq() }
func (k *Matern32) OptimizeNoise() bool { return k.optimize }

// Matern52 is the Matern 5/2 kernel:
//
//	k(x,y) = sigma^2 * (1 + sqrt(5)*d/l + 5*d^2/(3*l^2)) * exp(-sqrt(5)*d/l)
type Matern52 struct {
	logL     float64
	logSqrtS float64
	noiseParam
}

func NewMatern52(l, sigmaSq, noise float64, optimizeNoise bool) *Matern52 {
	return &Matern52{
		logL:       math.Log(l),
		logSqrtS:   0.5 * math.Log(sigmaSq),
		noiseParam: newNoiseParam(noise, optimizeNoise),
	}
}

func (k *Matern52) sigmaSq() float64 { return math.Exp(2 * k.logSqrtS) }
func (k *Matern52) l() float64       { return math.Exp(k.logL) }

func (k *Matern52) Cov(x, y []float64) float64 {
	d := math.Sqrt(numutil.SquaredDistance(x, y))
	l := k.l()
	r := math.Sqrt5 * d / l
	poly := 1 + r + r*r/3
	return k.sigmaSq() * poly * math.Exp(-r)
}

func (k *Matern52) CovNoisy(x, y []float64, i, j int) float64 {
	return k.Cov(x, y) + k.diag(i, j)
}

func (k *Matern52) Params() []float64 {
	p := []float64{k.logL, k.logSqrtS}
	if k.optimize {
		p = append(p, k.logNoise)
	}
	return p
}

func (k *Matern52) NumParams() int {
	if k.optimize {
		return 3
	}
	return 2
}

func (k *Matern52) SetParams(theta []float64) {
	if len(theta) != k.NumParams() {
		panic("kernel: wrong number of parameters for Matern52")
	}
	k.logL = theta[0]
	k.logSqrtS = theta[1]
	if k.optimize {
		k.setNoise(theta[2])
	}
}

func (k *Matern52) Gradient(x, y []float64) []float64 {
	d := math.Sqrt(numutil.SquaredDistance(x, y))
	l := k.l()
	r := math.Sqrt5 * d / l
	expTerm := math.Exp(-r)
	sigmaSq := k.sigmaSq()
	poly := 1 + r + r*r/3
	// d poly/d(log l) via d r/d(log l) = -r: dPoly = -(1+2r/3)*r
	dPolyDLogL := -(1 + 2*r/3) * r
	dLogL := sigmaSq * expTerm * (dPolyDLogL + poly*r)
	dLogS := 2 * sigmaSq * poly * expTerm
	return []float64{dLogL, dLogS}
}

func (k *Matern52) GradientNoisy(x, y []float64, i, j int) []float64 {
	g := k.Gradient(x, y)
	if k.optimize {
		g = append(g, k.noiseGradEntry(i, j))
	}
	return g
}

func (k *Matern52) Noise() float64      { return k.noiseParam.sigmaSq() }
func (k *Matern52) OptimizeNoise() bool { return k.optimize }
