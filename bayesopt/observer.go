package bayesopt

import (
	"github.com/gonum-contrib/bayesopt/acquisition"
	"github.com/gonum-contrib/bayesopt/gp"
)

// BOView is the read-only view of the orchestrator an Observer sees (spec
// §6's observer contract): stats_enabled, res_dir, current/total iteration,
// samples/observations, best_sample/best_observation, model.
type BOView interface {
	StatsEnabled() bool
	ResDir() string
	CurrentIteration() int
	TotalIterations() int
	Samples() [][]float64
	Observations() [][]float64
	BestSample(agg acquisition.Aggregator) []float64
	BestObservation(agg acquisition.Aggregator) float64
	Model() *gp.MultiGP
}

// Observer is invoked once per iteration, after the new sample is appended
// to the dataset but before (or around) the surrogate's incremental update
// (spec §5's ordering guarantee).
type Observer interface {
	Observe(bo BOView, agg acquisition.Aggregator)
}

// NullObserver does nothing; it is the Optimizer's default.
type NullObserver struct{}

func (NullObserver) Observe(bo BOView, agg acquisition.Aggregator) {}

// ObservationRecord is one SliceObserver entry.
type ObservationRecord struct {
	Iteration       int
	BestObservation float64
	NumSamples      int
}

// SliceObserver collects one ObservationRecord per call, for tests.
type SliceObserver struct {
	Records []ObservationRecord
}

func (s *SliceObserver) Observe(bo BOView, agg acquisition.Aggregator) {
	s.Records = append(s.Records, ObservationRecord{
		Iteration:       bo.CurrentIteration(),
		BestObservation: bo.BestObservation(agg),
		NumSamples:      len(bo.Samples()),
	})
}
