package fitter

import (
	"github.com/gonum-contrib/bayesopt/gp"
	"github.com/gonum-contrib/bayesopt/inneropt"
)

// KernelLF maximizes log p(y|X,theta_k) over the kernel's hyperparameters
// only, using an inner optimizer (default Rprop per spec §4.7).
type KernelLF struct {
	Optimizer inneropt.Optimizer
}

// NewKernelLF returns a KernelLF fitter. If opt is nil, a default Rprop is
// used.
func NewKernelLF(opt inneropt.Optimizer) *KernelLF {
	if opt == nil {
		opt = inneropt.NewRprop(inneropt.DefaultRpropConfig())
	}
	return &KernelLF{Optimizer: opt}
}

func (k *KernelLF) Fit(g *gp.GP) {
	kern := g.Kernel()
	theta0 := append([]float64(nil), kern.Params()...)

	objective := func(theta []float64, wantGrad bool) (float64, []float64) {
		kern.SetParams(theta)
		g.Recompute(false, true)
		value := g.LogLik()
		if !wantGrad {
			return value, nil
		}
		return value, g.LogLikGradKernel()
	}

	best, _ := k.Optimizer.Maximize(objective, theta0, false)
	kern.SetParams(best)
	g.Recompute(false, true)
}
