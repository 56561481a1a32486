package fitter

import (
	"github.com/gonum-contrib/bayesopt/gp"
	"github.com/gonum-contrib/bayesopt/inneropt"
)

// MeanLF maximizes log p(y|X,theta_m) over the mean function's
// hyperparameters only. Only the residual vector depends on theta_m, so the
// Cholesky factor is kept and only alpha/log-likelihood are refreshed (spec
// §4.7).
type MeanLF struct {
	Optimizer inneropt.Optimizer
}

// NewMeanLF returns a MeanLF fitter. If opt is nil, a default Rprop is used.
func NewMeanLF(opt inneropt.Optimizer) *MeanLF {
	if opt == nil {
		opt = inneropt.NewRprop(inneropt.DefaultRpropConfig())
	}
	return &MeanLF{Optimizer: opt}
}

func (m *MeanLF) Fit(g *gp.GP) {
	mn := g.Mean()
	if mn.NumParams() == 0 {
		return
	}
	theta0 := append([]float64(nil), mn.Params()...)

	objective := func(theta []float64, wantGrad bool) (float64, []float64) {
		mn.SetParams(theta)
		g.Recompute(true, false)
		value := g.LogLik()
		if !wantGrad {
			return value, nil
		}
		return value, g.LogLikGradMean()
	}

	best, _ := m.Optimizer.Maximize(objective, theta0, false)
	mn.SetParams(best)
	g.Recompute(true, false)
}
