package inneropt

import "math"

// AdamConfig configures Adam (spec §6 opt_adam.*).
type AdamConfig struct {
	Iterations int
	Alpha      float64
	B1         float64
	B2         float64
	EpsStop    float64 // stop when ||x_t - x_t-1|| < EpsStop; 0 disables
}

const adamEps = 1e-8

// DefaultAdamConfig returns opt_adam's documented defaults.
func DefaultAdamConfig() AdamConfig {
	return AdamConfig{Iterations: 300, Alpha: 0.001, B1: 0.9, B2: 0.999, EpsStop: 0}
}

// Adam is the standard Adam maximizer (adds alpha*mhat/(sqrt(vhat)+eps)).
type Adam struct {
	Config AdamConfig
}

// NewAdam returns an Adam optimizer with the given configuration.
func NewAdam(cfg AdamConfig) *Adam { return &Adam{Config: cfg} }

func (a *Adam) Maximize(f ObjectiveFunc, x0 []float64, bounded bool) ([]float64, error) {
	cfg := a.Config
	d := len(x0)
	x := append([]float64(nil), x0...)
	clip(x, bounded)

	m := make([]float64, d)
	v := make([]float64, d)

	v0, _ := f(x, false)
	var tr tracker
	tr.consider(x, v0)

	for t := 1; t <= cfg.Iterations; t++ {
		_, grad := f(x, true)
		if grad == nil {
			break
		}

		prev := append([]float64(nil), x...)
		for j := 0; j < d; j++ {
			m[j] = cfg.B1*m[j] + (1-cfg.B1)*grad[j]
			v[j] = cfg.B2*v[j] + (1-cfg.B2)*grad[j]*grad[j]
			mhat := m[j] / (1 - math.Pow(cfg.B1, float64(t)))
			vhat := v[j] / (1 - math.Pow(cfg.B2, float64(t)))
			x[j] += cfg.Alpha * mhat / (math.Sqrt(vhat) + adamEps)
		}
		clip(x, bounded)

		val, _ := f(x, false)
		tr.consider(x, val)

		if cfg.EpsStop > 0 && l2distance(x, prev) < cfg.EpsStop {
			break
		}
	}

	return tr.result(x), nil
}

func l2distance(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}
