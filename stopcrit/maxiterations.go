package stopcrit

// MaxIterations stops once current_iteration >= N (spec §4.10).
type MaxIterations struct {
	N int
}

// NewMaxIterations returns a MaxIterations criterion.
func NewMaxIterations(n int) MaxIterations { return MaxIterations{N: n} }

func (c MaxIterations) Stop(s State) bool { return s.CurrentIteration >= c.N }
