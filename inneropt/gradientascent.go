package inneropt

import "math"

// GradientAscentConfig configures GradientAscent (spec §6 opt_gradient_ascent.*).
type GradientAscentConfig struct {
	Iterations int
	Alpha      float64
	Gamma      float64 // momentum coefficient; 0 disables momentum
	Nesterov   bool    // if true and Gamma>0, peek ahead by gamma*v before evaluating the gradient
	EpsStop    float64
}

// DefaultGradientAscentConfig returns opt_gradient_ascent's documented
// defaults (Gamma 0, Nesterov false).
func DefaultGradientAscentConfig() GradientAscentConfig {
	return GradientAscentConfig{Iterations: 300, Alpha: 0.01, Gamma: 0, Nesterov: false, EpsStop: 0}
}

// GradientAscent is plain or Nesterov-momentum gradient ascent.
type GradientAscent struct {
	Config GradientAscentConfig
}

// NewGradientAscent returns a GradientAscent optimizer with the given
// configuration.
func NewGradientAscent(cfg GradientAscentConfig) *GradientAscent {
	return &GradientAscent{Config: cfg}
}

func (a *GradientAscent) Maximize(f ObjectiveFunc, x0 []float64, bounded bool) ([]float64, error) {
	cfg := a.Config
	d := len(x0)
	x := append([]float64(nil), x0...)
	clip(x, bounded)

	velocity := make([]float64, d)

	v0, _ := f(x, false)
	var tr tracker
	tr.consider(x, v0)

	for iter := 0; iter < cfg.Iterations; iter++ {
		evalAt := x
		if cfg.Nesterov && cfg.Gamma > 0 {
			peek := make([]float64, d)
			for j := range peek {
				peek[j] = x[j] + cfg.Gamma*velocity[j]
			}
			clip(peek, bounded)
			evalAt = peek
		}

		_, grad := f(evalAt, true)
		if grad == nil {
			break
		}

		var stepNorm float64
		for j := 0; j < d; j++ {
			velocity[j] = cfg.Gamma*velocity[j] + cfg.Alpha*grad[j]
			x[j] += velocity[j]
			stepNorm += velocity[j] * velocity[j]
		}
		clip(x, bounded)

		val, _ := f(x, false)
		tr.consider(x, val)

		if cfg.EpsStop > 0 && math.Sqrt(stepNorm) < cfg.EpsStop {
			break
		}
	}

	return tr.result(x), nil
}
