package bayesopt

import (
	"math"

	"github.com/gonum-contrib/bayesopt/acquisition"
)

// BestObservation scans the dataset under agg and returns the best
// aggregated value, or -Inf if the dataset is empty.
func (o *Optimizer) BestObservation(agg acquisition.Aggregator) float64 {
	best, _ := o.bestIndex(agg)
	if best < 0 {
		return math.Inf(-1)
	}
	return agg(o.observations[best])
}

// BestSample returns the sample achieving BestObservation, or nil if the
// dataset is empty.
func (o *Optimizer) BestSample(agg acquisition.Aggregator) []float64 {
	best, _ := o.bestIndex(agg)
	if best < 0 {
		return nil
	}
	return o.samples[best]
}

// BestConstrainedObservation is the constrained variant (spec §4.11): only
// samples whose constraint vector is entrywise positive are feasible; if
// none are feasible it falls back to the unconstrained best, without
// mutating any cached state (SPEC_FULL.md Open Question 1).
func (o *Optimizer) BestConstrainedObservation(agg acquisition.Aggregator) float64 {
	idx := o.bestFeasibleIndex(agg)
	if idx < 0 {
		return o.BestObservation(agg)
	}
	return agg(o.observations[idx])
}

// BestConstrainedSample is BestConstrainedObservation's matching sample.
func (o *Optimizer) BestConstrainedSample(agg acquisition.Aggregator) []float64 {
	idx := o.bestFeasibleIndex(agg)
	if idx < 0 {
		return o.BestSample(agg)
	}
	return o.samples[idx]
}

func (o *Optimizer) bestIndex(agg acquisition.Aggregator) (int, float64) {
	best := -1
	bestValue := math.Inf(-1)
	for i, y := range o.observations {
		if v := agg(y); v > bestValue {
			bestValue = v
			best = i
		}
	}
	return best, bestValue
}

func (o *Optimizer) bestFeasibleIndex(agg acquisition.Aggregator) int {
	best := -1
	bestValue := math.Inf(-1)
	for i, y := range o.observations {
		if !feasible(o.constraints[i]) {
			continue
		}
		if v := agg(y); v > bestValue {
			bestValue = v
			best = i
		}
	}
	return best
}

func feasible(constraints []float64) bool {
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if c <= 0 {
			return false
		}
	}
	return true
}
