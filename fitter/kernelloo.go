package fitter

import (
	"math"

	"github.com/gonum-contrib/bayesopt/gp"
	"github.com/gonum-contrib/bayesopt/inneropt"
)

// KernelLOO maximizes the leave-one-out cross-validation log predictive
// density over the kernel's hyperparameters (spec §4.7). LOO-CV has no
// closed-form gradient exposed by package gp, so KernelLOO drives its inner
// optimizer with central finite differences — matching the family of
// gradient-free fallbacks spec §4.6 already requires for global search, just
// applied here to a local hyperparameter search instead.
type KernelLOO struct {
	Optimizer inneropt.Optimizer
	FDStep    float64
}

// NewKernelLOO returns a KernelLOO fitter. If opt is nil, a default Rprop is
// used; FDStep defaults to 1e-5 if zero.
func NewKernelLOO(opt inneropt.Optimizer, fdStep float64) *KernelLOO {
	if opt == nil {
		opt = inneropt.NewRprop(inneropt.DefaultRpropConfig())
	}
	if fdStep == 0 {
		fdStep = 1e-5
	}
	return &KernelLOO{Optimizer: opt, FDStep: fdStep}
}

func (k *KernelLOO) Fit(g *gp.GP) {
	kern := g.Kernel()
	theta0 := append([]float64(nil), kern.Params()...)
	h := k.FDStep

	eval := func(theta []float64) float64 {
		kern.SetParams(theta)
		g.Recompute(false, true)
		return g.LOOCV()
	}

	objective := func(theta []float64, wantGrad bool) (float64, []float64) {
		value := eval(theta)
		if !wantGrad {
			return value, nil
		}
		if math.IsInf(value, -1) {
			return value, nil
		}
		grad := make([]float64, len(theta))
		probe := append([]float64(nil), theta...)
		for i := range theta {
			orig := probe[i]
			probe[i] = orig + h
			fp := eval(probe)
			probe[i] = orig - h
			fm := eval(probe)
			probe[i] = orig
			grad[i] = (fp - fm) / (2 * h)
		}
		eval(theta) // restore the GP's cached state to theta before returning
		return value, grad
	}

	best, _ := k.Optimizer.Maximize(objective, theta0, false)
	kern.SetParams(best)
	g.Recompute(false, true)
}
