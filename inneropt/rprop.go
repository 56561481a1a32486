package inneropt

import "math"

// RpropConfig configures Rprop (spec §6 opt_rprop.*).
type RpropConfig struct {
	Iterations int
	EpsStop    float64 // stop when ||g|| < EpsStop; EpsStop==0 disables the check
	DeltaInit  float64
	DeltaMin   float64
	DeltaMax   float64
	EtaPlus    float64
	EtaMinus   float64
}

// DefaultRpropConfig returns opt_rprop's documented defaults.
func DefaultRpropConfig() RpropConfig {
	return RpropConfig{
		Iterations: 300,
		EpsStop:    0,
		DeltaInit:  0.1,
		DeltaMin:   1e-6,
		DeltaMax:   50,
		EtaPlus:    1.2,
		EtaMinus:   0.5,
	}
}

// Rprop is the resilient-backpropagation maximizer of spec §4.6: a
// per-coordinate adaptive step size, driven only by gradient sign.
type Rprop struct {
	Config RpropConfig
}

// NewRprop returns an Rprop optimizer with the given configuration.
func NewRprop(cfg RpropConfig) *Rprop { return &Rprop{Config: cfg} }

func (r *Rprop) Maximize(f ObjectiveFunc, x0 []float64, bounded bool) ([]float64, error) {
	cfg := r.Config
	d := len(x0)
	x := append([]float64(nil), x0...)
	clip(x, bounded)

	delta := make([]float64, d)
	for i := range delta {
		delta[i] = cfg.DeltaInit
	}
	prevGrad := make([]float64, d)

	v0, _ := f(x, false)
	var tr tracker
	tr.consider(x, v0)

	for iter := 0; iter < cfg.Iterations; iter++ {
		_, grad := f(x, true)
		if grad == nil {
			break
		}

		gnorm := l2norm(grad)
		if cfg.EpsStop > 0 && gnorm < cfg.EpsStop {
			break
		}

		for j := 0; j < d; j++ {
			sign := prevGrad[j] * grad[j]
			switch {
			case sign > 0:
				delta[j] = math.Min(delta[j]*cfg.EtaPlus, cfg.DeltaMax)
			case sign < 0:
				delta[j] = math.Max(delta[j]*cfg.EtaMinus, cfg.DeltaMin)
				grad[j] = 0
			}
			// Ascend: step in the direction of increasing f, i.e. the
			// spec's "x -= sign(g)*delta (minimizing -f)" with g = -grad(f).
			// A zero (or just zeroed) gradient has sign 0: no step.
			if grad[j] != 0 {
				x[j] += math.Copysign(delta[j], grad[j])
			}
		}
		clip(x, bounded)
		copy(prevGrad, grad)

		v, _ := f(x, false)
		tr.consider(x, v)
	}

	return tr.result(x), nil
}

func l2norm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}
