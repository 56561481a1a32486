package mean

import "gonum.org/v1/gonum/mat"

// Constant returns a configured scalar broadcast to every output dimension:
// m(x) = [c, c, ..., c].
type Constant struct {
	dimOut int
	c      float64
}

// NewConstant returns a Constant mean with initial value c, per
// mean_constant.constant (default 1).
func NewConstant(dimOut int, c float64) *Constant {
	return &Constant{dimOut: dimOut, c: c}
}

func (m *Constant) Eval(x []float64, ctx GPContext) []float64 {
	out := make([]float64, m.dimOut)
	for i := range out {
		out[i] = m.c
	}
	return out
}

func (m *Constant) Params() []float64 { return []float64{m.c} }
func (m *Constant) NumParams() int    { return 1 }

func (m *Constant) SetParams(theta []float64) {
	if len(theta) != 1 {
		panic("mean: Constant takes exactly one parameter")
	}
	m.c = theta[0]
}

// Gradient is d m_i(x) / d c = 1 for every output dimension.
func (m *Constant) Gradient(x []float64, ctx GPContext) *mat.Dense {
	g := mat.NewDense(m.dimOut, 1, nil)
	for i := 0; i < m.dimOut; i++ {
		g.Set(i, 0, 1)
	}
	return g
}
