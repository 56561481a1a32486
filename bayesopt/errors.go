package bayesopt

import "fmt"

// EvaluationError reports that the objective returned a non-finite
// observation at x (spec §7); Optimize returns it and leaves the dataset
// containing only the valid samples accumulated before the failure.
type EvaluationError struct {
	X []float64
	Y []float64
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("bayesopt: non-finite observation %v at x=%v", e.Y, e.X)
}
