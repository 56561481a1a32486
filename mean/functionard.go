package mean

import "gonum.org/v1/gonum/mat"

// FunctionARD learns an affine (dimOut x (dimOut+1)) transform T around an
// inner mean function:
//
//	out = T * [inner(x); 1]
//
// Hyperparameters are T's entries (row-major, dimOut*(dimOut+1) of them)
// followed by the inner function's own hyperparameters; gradients are
// composed via the chain rule.
type FunctionARD struct {
	dimOut int
	t      []float64 // row-major dimOut x (dimOut+1)
	inner  Mean
}

// NewFunctionARD wraps inner with an affine transform initialized to the
// identity map (T = [I | 0]).
func NewFunctionARD(dimOut int, inner Mean) *FunctionARD {
	t := make([]float64, dimOut*(dimOut+1))
	for i := 0; i < dimOut; i++ {
		t[i*(dimOut+1)+i] = 1
	}
	return &FunctionARD{dimOut: dimOut, t: t, inner: inner}
}

func (m *FunctionARD) augmented(x []float64, ctx GPContext) []float64 {
	innerOut := m.inner.Eval(x, ctx)
	aug := make([]float64, m.dimOut+1)
	copy(aug, innerOut)
	aug[m.dimOut] = 1
	return aug
}

func (m *FunctionARD) Eval(x []float64, ctx GPContext) []float64 {
	aug := m.augmented(x, ctx)
	out := make([]float64, m.dimOut)
	cols := m.dimOut + 1
	for i := 0; i < m.dimOut; i++ {
		var s float64
		for j := 0; j < cols; j++ {
			s += m.t[i*cols+j] * aug[j]
		}
		out[i] = s
	}
	return out
}

func (m *FunctionARD) Params() []float64 {
	p := append([]float64(nil), m.t...)
	return append(p, m.inner.Params()...)
}

func (m *FunctionARD) NumParams() int {
	return len(m.t) + m.inner.NumParams()
}

func (m *FunctionARD) SetParams(theta []float64) {
	if len(theta) != m.NumParams() {
		panic("mean: wrong number of parameters for FunctionARD")
	}
	copy(m.t, theta[:len(m.t)])
	m.inner.SetParams(theta[len(m.t):])
}

// Gradient composes d(T*aug)/dT (direct) with d(T*aug)/d(inner params) =
// T[:, :dimOut] * d(inner)/d(inner params) via the chain rule.
func (m *FunctionARD) Gradient(x []float64, ctx GPContext) *mat.Dense {
	cols := m.dimOut + 1
	aug := m.augmented(x, ctx)
	total := m.NumParams()
	g := mat.NewDense(m.dimOut, total, nil)

	// d out_i / d T_{i,j} = aug[j]; all other T-rows contribute zero.
	for i := 0; i < m.dimOut; i++ {
		for j := 0; j < cols; j++ {
			g.Set(i, i*cols+j, aug[j])
		}
	}

	if m.inner.NumParams() == 0 {
		return g
	}
	innerGrad := m.inner.Gradient(x, ctx) // dimOut x innerParams
	if innerGrad == nil {
		return g
	}
	ir, ic := innerGrad.Dims()
	for i := 0; i < m.dimOut; i++ {
		for p := 0; p < ic; p++ {
			var s float64
			for k := 0; k < ir; k++ {
				// d out_i/d inner_k = T_{i,k}; chain with d inner_k/d theta_p.
				s += m.t[i*cols+k] * innerGrad.At(k, p)
			}
			g.Set(i, len(m.t)+p, s)
		}
	}
	return g
}
