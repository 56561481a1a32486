package stopcrit

import (
	"github.com/gonum-contrib/bayesopt/acquisition"
	"github.com/gonum-contrib/bayesopt/inneropt"
	"github.com/gonum-contrib/bayesopt/internal/numutil"
)

// MaxPredictedValue stops once the best observation so far is within Ratio
// of the surrogate's own best predicted mean over the domain (spec §4.10):
// it optimizes model.mean over [0,1]^d to get mu*, then stops when
// best_observation > Ratio*mu*. The comparison is applied as is for any
// sign of mu*; if the inner optimizer returns an error, Stop reports false.
// Evaluating it on a model with no samples is a misuse and panics.
type MaxPredictedValue struct {
	Ratio     float64
	DimIn     int
	Optimizer inneropt.Optimizer
	Agg       acquisition.Aggregator
	RNG       *numutil.RNG
}

// NewMaxPredictedValue returns a MaxPredictedValue criterion. If opt is nil,
// a GridSearch with 10 bins per axis is used (gradient-free, since no
// closed-form mean gradient is threaded through here). If agg is nil,
// acquisition.FirstElem is used.
func NewMaxPredictedValue(ratio float64, dimIn int, opt inneropt.Optimizer, agg acquisition.Aggregator, rng *numutil.RNG) *MaxPredictedValue {
	if opt == nil {
		opt = inneropt.NewGridSearch(10)
	}
	if agg == nil {
		agg = acquisition.FirstElem
	}
	if rng == nil {
		rng = numutil.NewRNG()
	}
	return &MaxPredictedValue{Ratio: ratio, DimIn: dimIn, Optimizer: opt, Agg: agg, RNG: rng}
}

func (c *MaxPredictedValue) Stop(s State) bool {
	if s.Model == nil || s.Model.NumSamples() == 0 {
		panic("stopcrit: MaxPredictedValue evaluated on a model with no samples")
	}

	objective := func(x []float64, wantGrad bool) (float64, []float64) {
		mu, _ := s.Model.Predict(x)
		return c.Agg(mu), nil
	}

	x0 := make([]float64, c.DimIn)
	c.RNG.UniformVector(x0)
	xStar, err := c.Optimizer.Maximize(objective, x0, true)
	if err != nil {
		return false
	}
	muStar, _ := objective(xStar, false)

	return s.BestObservation > c.Ratio*muStar
}
