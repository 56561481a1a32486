// Package inneropt implements the numerical inner optimizers used both to
// maximize GP hyperparameter log-likelihood and to maximize acquisition
// functions over [0,1]^d (spec §4.6).
package inneropt

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// ObjectiveFunc is the callable every inner optimizer maximizes: it returns
// the value at x and, if wantGrad, the gradient; grad is nil when wantGrad
// is false.
type ObjectiveFunc func(x []float64, wantGrad bool) (value float64, grad []float64)

// Optimizer maximizes an ObjectiveFunc starting from x0. When bounded, every
// intermediate x is clipped to [0,1]^d before evaluation, and the returned
// point is in-bounds.
type Optimizer interface {
	Maximize(f ObjectiveFunc, x0 []float64, bounded bool) ([]float64, error)
}

// clip projects x into [0,1]^d in place when bounded is true.
func clip(x []float64, bounded bool) {
	if bounded {
		numutil.ClipUnit(x)
	}
}

// tracker keeps the best (x, value) seen across an optimizer's iterations,
// since an inner optimizer's result is the best point visited, not
// necessarily the last (spec §4.6 Rprop note, generalized to every
// optimizer in this package).
type tracker struct {
	bestX     []float64
	bestValue float64
	has       bool
}

func (t *tracker) consider(x []float64, value float64) {
	if !t.has || value > t.bestValue {
		t.bestValue = value
		t.bestX = append([]float64(nil), x...)
		t.has = true
	}
}

func (t *tracker) result(fallback []float64) []float64 {
	if t.has {
		return t.bestX
	}
	return append([]float64(nil), fallback...)
}
