package mean

import "gonum.org/v1/gonum/mat"

// Data returns the empirical mean of the current dataset's observations,
// read from the GPContext rather than cached locally so it always reflects
// the owning GP's latest dataset.
type Data struct{}

// NewData returns a Data mean function.
func NewData() *Data { return &Data{} }

func (m *Data) Eval(x []float64, ctx GPContext) []float64 {
	return ctx.MeanObservation()
}

func (m *Data) Params() []float64                    { return nil }
func (m *Data) NumParams() int                        { return 0 }
func (m *Data) SetParams(theta []float64) {
	if len(theta) != 0 {
		panic("mean: Data takes no parameters")
	}
}
func (m *Data) Gradient(x []float64, ctx GPContext) *mat.Dense { return nil }
