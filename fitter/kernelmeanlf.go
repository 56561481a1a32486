package fitter

import (
	"github.com/gonum-contrib/bayesopt/gp"
	"github.com/gonum-contrib/bayesopt/inneropt"
)

// KernelMeanLF jointly maximizes log p(y|X,theta_k,theta_m) over both kernel
// and mean hyperparameters, concatenated kernel-first (spec §4.7).
type KernelMeanLF struct {
	Optimizer inneropt.Optimizer
}

// NewKernelMeanLF returns a KernelMeanLF fitter. If opt is nil, a default
// Rprop is used.
func NewKernelMeanLF(opt inneropt.Optimizer) *KernelMeanLF {
	if opt == nil {
		opt = inneropt.NewRprop(inneropt.DefaultRpropConfig())
	}
	return &KernelMeanLF{Optimizer: opt}
}

func (f *KernelMeanLF) Fit(g *gp.GP) {
	kern := g.Kernel()
	mn := g.Mean()
	nk := kern.NumParams()
	nm := mn.NumParams()

	theta0 := make([]float64, 0, nk+nm)
	theta0 = append(theta0, kern.Params()...)
	theta0 = append(theta0, mn.Params()...)

	objective := func(theta []float64, wantGrad bool) (float64, []float64) {
		kern.SetParams(theta[:nk])
		mn.SetParams(theta[nk:])
		g.Recompute(true, true)
		value := g.LogLik()
		if !wantGrad {
			return value, nil
		}
		kGrad := g.LogLikGradKernel()
		if kGrad == nil {
			return value, nil
		}
		grad := make([]float64, 0, nk+nm)
		grad = append(grad, kGrad...)
		grad = append(grad, g.LogLikGradMean()...)
		return value, grad
	}

	best, _ := f.Optimizer.Maximize(objective, theta0, false)
	kern.SetParams(best[:nk])
	mn.SetParams(best[nk:])
	g.Recompute(true, true)
}
