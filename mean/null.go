package mean

import "gonum.org/v1/gonum/mat"

// NullFunction is the zero mean function m(x) = 0.
type NullFunction struct {
	dimOut int
}

// NewNullFunction returns a NullFunction producing dimOut-length zero
// vectors.
func NewNullFunction(dimOut int) *NullFunction {
	return &NullFunction{dimOut: dimOut}
}

func (m *NullFunction) Eval(x []float64, ctx GPContext) []float64 {
	return make([]float64, m.dimOut)
}

func (m *NullFunction) Params() []float64 { return nil }
func (m *NullFunction) NumParams() int    { return 0 }
func (m *NullFunction) SetParams(theta []float64) {
	if len(theta) != 0 {
		panic("mean: NullFunction takes no parameters")
	}
}
func (m *NullFunction) Gradient(x []float64, ctx GPContext) *mat.Dense { return nil }
