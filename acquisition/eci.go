package acquisition

import (
	"math"

	"github.com/gonum-contrib/bayesopt/gp"
)

// ECI is the experimental constrained-EI acquisition (spec §4.8): EI scaled
// by the probability that a separate constraint GP predicts a feasible
// point, Phi((mu_c(x) - 1) / sigma_c(x)). With no constraint GP attached
// (Constraint == nil) ECI degenerates to plain EI (the constraint term is 1).
type ECI struct {
	EI         *EI
	Constraint *gp.MultiGP
}

// NewECI binds an ECI acquisition function to model (the objective GP) and
// constraint (the feasibility GP, which may be nil).
func NewECI(cfg EIConfig, model, constraint *gp.MultiGP) *ECI {
	return &ECI{EI: NewEI(cfg, model), Constraint: constraint}
}

func (e *ECI) Eval(x []float64, agg Aggregator, wantGrad bool) (float64, []float64) {
	ei, _ := e.EI.Eval(x, agg, false)
	if e.Constraint == nil || e.Constraint.NumSamples() == 0 {
		return ei, nil
	}

	muC, sigma2C := e.Constraint.Predict(x)
	sigmaC := math.Sqrt(math.Max(sigma2Agg(sigma2C, FirstElem, muC), 0))
	if sigmaC < 1e-10 {
		return ei, nil
	}
	z := (FirstElem(muC) - 1) / sigmaC
	return ei * standardNormal.CDF(z), nil
}
