// Package bayesopt implements the BO orchestrator of spec §4.11: the outer
// loop composing an initialization strategy, a GP surrogate, an acquisition
// function, an inner optimizer, and a hyperparameter fitter into
// `Optimizer.Optimize`.
package bayesopt

// Config aggregates the orchestrator's named knobs (spec §6
// bayes_opt_bobase/bayes_opt_boptimizer).
type Config struct {
	// StatsEnabled gates whether Observer hooks are invoked.
	StatsEnabled bool
	// Bounded clips every candidate point to [0,1]^d.
	Bounded bool
	// HPPeriod re-fits hyperparameters every HPPeriod iterations; <= 0
	// disables periodic refitting.
	HPPeriod int
}

// DefaultConfig returns bayes_opt_bobase/bayes_opt_boptimizer's documented
// defaults (stats_enabled=true, bounded=true, hp_period=-1).
func DefaultConfig() Config {
	return Config{StatsEnabled: true, Bounded: true, HPPeriod: -1}
}
