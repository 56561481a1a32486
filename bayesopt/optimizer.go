package bayesopt

import (
	"fmt"
	"os"
	"time"

	"github.com/gonum-contrib/bayesopt/acquisition"
	"github.com/gonum-contrib/bayesopt/gp"
	"github.com/gonum-contrib/bayesopt/inneropt"
	"github.com/gonum-contrib/bayesopt/internal/numutil"
	"github.com/gonum-contrib/bayesopt/sampling"
	"github.com/gonum-contrib/bayesopt/stopcrit"
)

// ObjectiveFunc is the user's black-box objective: y has length dim_out;
// constraints has length nb_constraints (nil when there are none). Finite
// values only — NaN/Inf aborts Optimize with an EvaluationError.
type ObjectiveFunc func(x []float64) (y []float64, constraints []float64)

// AcquisitionFactory builds the acquisition function bound to model for the
// given (0-based) iteration index (spec §4.11 step 4a).
type AcquisitionFactory func(model *gp.MultiGP, iteration int) acquisition.Function

// HPFitter refits a MultiGP's hyperparameters in place; fitter.MultiGPParallelLF
// satisfies this directly.
type HPFitter interface {
	Fit(m *gp.MultiGP)
}

// Optimizer is the BO outer loop of spec §4.11.
type Optimizer struct {
	Config Config

	DimIn  int
	DimOut int

	model       *gp.MultiGP
	Init        sampling.Init
	Acquisition AcquisitionFactory
	InnerOpt    inneropt.Optimizer
	Stop        stopcrit.Criterion
	HPFitter    HPFitter // nil disables periodic refitting regardless of Config.HPPeriod
	Observer    Observer
	RNG         *numutil.RNG

	resDir string

	samples         [][]float64
	observations    [][]float64
	constraints     [][]float64
	currentIter     int
	totalIterations int
}

// NewOptimizer builds an Optimizer. RNG defaults to an auto-seeded one,
// Observer defaults to NullObserver, if unset.
func NewOptimizer(cfg Config, dimIn, dimOut int, model *gp.MultiGP, init sampling.Init, acq AcquisitionFactory, innerOpt inneropt.Optimizer, stop stopcrit.Criterion, hpFitter HPFitter) *Optimizer {
	o := &Optimizer{
		Config:      cfg,
		DimIn:       dimIn,
		DimOut:      dimOut,
		model:       model,
		Init:        init,
		Acquisition: acq,
		InnerOpt:    innerOpt,
		Stop:        stop,
		HPFitter:    hpFitter,
		Observer:    NullObserver{},
		RNG:         numutil.NewRNG(),
	}
	o.resDir = defaultResDir(time.Now())
	return o
}

func defaultResDir(now time.Time) string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s_%s_%d", host, now.Format("2006-01-02_15_04_05"), os.Getpid())
}

// StatsEnabled implements BOView.
func (o *Optimizer) StatsEnabled() bool { return o.Config.StatsEnabled }

// ResDir implements BOView.
func (o *Optimizer) ResDir() string { return o.resDir }

// CurrentIteration implements BOView.
func (o *Optimizer) CurrentIteration() int { return o.currentIter }

// TotalIterations implements BOView.
func (o *Optimizer) TotalIterations() int { return o.totalIterations }

// Samples implements BOView.
func (o *Optimizer) Samples() [][]float64 { return o.samples }

// Observations implements BOView.
func (o *Optimizer) Observations() [][]float64 { return o.observations }

// Model implements BOView.
func (o *Optimizer) Model() *gp.MultiGP { return o.model }

// Optimize runs the state machine of spec §4.11. If reset, the dataset and
// total-iteration counter are cleared first.
func (o *Optimizer) Optimize(f ObjectiveFunc, agg acquisition.Aggregator, reset bool) error {
	if reset {
		o.samples = nil
		o.observations = nil
		o.constraints = nil
		o.totalIterations = 0
	}
	o.currentIter = 0

	if o.totalIterations == 0 {
		for _, x := range o.Init.Points(o.DimIn, o.RNG) {
			if err := o.addNewSample(f, x); err != nil {
				return err
			}
		}
	}

	if len(o.samples) > 0 {
		o.model.Compute(o.samples, o.observations)
	} else {
		o.model.Compute(nil, nil)
	}

	for {
		state := stopcrit.State{
			CurrentIteration: o.currentIter,
			TotalIterations:  o.totalIterations,
			BestObservation:  o.BestObservation(agg),
			Model:            o.model,
		}
		if o.Stop.Stop(state) {
			return nil
		}

		acq := o.Acquisition(o.model, o.currentIter)
		x0 := make([]float64, o.DimIn)
		o.RNG.UniformVector(x0)

		objective := func(x []float64, wantGrad bool) (float64, []float64) {
			return acq.Eval(x, agg, wantGrad)
		}
		xNew, err := o.InnerOpt.Maximize(objective, x0, o.Config.Bounded)
		if err != nil {
			return err
		}

		if err := o.addNewSample(f, xNew); err != nil {
			return err
		}
		if o.Observer != nil && o.Config.StatsEnabled {
			o.Observer.Observe(o, agg)
		}

		yNew := o.observations[len(o.observations)-1]
		if err := o.model.AddSample(xNew, yNew); err != nil {
			return err
		}

		o.currentIter++
		o.totalIterations++

		if o.HPFitter != nil && o.Config.HPPeriod > 0 && o.currentIter%o.Config.HPPeriod == 0 {
			o.HPFitter.Fit(o.model)
		}
	}
}

// addNewSample evaluates f at x and appends (x, y, constraints) to the
// dataset, rejecting non-finite observations with an EvaluationError.
func (o *Optimizer) addNewSample(f ObjectiveFunc, x []float64) error {
	y, constraints := f(x)
	if numutil.IsNaNOrInf(y) {
		return &EvaluationError{X: append([]float64(nil), x...), Y: append([]float64(nil), y...)}
	}
	o.samples = append(o.samples, append([]float64(nil), x...))
	o.observations = append(o.observations, append([]float64(nil), y...))
	o.constraints = append(o.constraints, append([]float64(nil), constraints...))
	return nil
}
