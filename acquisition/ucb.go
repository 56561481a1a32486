package acquisition

import (
	"math"

	"github.com/gonum-contrib/bayesopt/gp"
)

// UCBConfig configures UCB (spec §6 acqui_ucb.alpha).
type UCBConfig struct {
	Alpha float64
}

// DefaultUCBConfig returns acqui_ucb's documented default (alpha=0.5).
func DefaultUCBConfig() UCBConfig { return UCBConfig{Alpha: 0.5} }

// UCB is the Upper Confidence Bound acquisition:
//
//	UCB(x) = mu_agg(x) + alpha*sqrt(sigma2(x))
//
// UCB has no gradient; Eval always returns a nil grad.
type UCB struct {
	Config UCBConfig
	Model  *gp.MultiGP
}

// NewUCB binds a UCB acquisition function to model.
func NewUCB(cfg UCBConfig, model *gp.MultiGP) *UCB {
	return &UCB{Config: cfg, Model: model}
}

func (u *UCB) Eval(x []float64, agg Aggregator, wantGrad bool) (float64, []float64) {
	mu, sigma2 := u.Model.Predict(x)
	value := agg(mu) + u.Config.Alpha*math.Sqrt(math.Max(sigma2Agg(sigma2, agg, mu), 0))
	return value, nil
}

// sigma2Agg picks the variance of whichever output agg selects, by probing a
// one-hot basis. Exact for FirstElem and any other selection-style
// aggregator; for dim_out==1 it is just sigma2[0].
func sigma2Agg(sigma2 []float64, agg Aggregator, mu []float64) float64 {
	if len(sigma2) == 1 {
		return sigma2[0]
	}
	idx := 0
	best := math.Inf(-1)
	for i := range mu {
		probe := make([]float64, len(mu))
		probe[i] = 1
		if v := agg(probe); v > best {
			best = v
			idx = i
		}
	}
	return sigma2[idx]
}
