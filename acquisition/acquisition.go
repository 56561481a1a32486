// Package acquisition implements the acquisition functions of spec §4.8:
// scalar utilities over the input domain, maximized by an inneropt.Optimizer
// to choose the next query point.
package acquisition

// Aggregator collapses a multi-output prediction (length dim_out) to a
// scalar, the reduction every acquisition function evaluates against.
type Aggregator func(mu []float64) float64

// FirstElem is the default Aggregator: it returns the first output
// component, as a first-class callable rather than a static default.
func FirstElem(mu []float64) float64 { return mu[0] }

// Function is a scalar acquisition function bound to a surrogate model.
// Eval returns the acquisition value at x under agg and, if wantGrad and the
// function supports gradients, the gradient; grad is nil otherwise.
type Function interface {
	Eval(x []float64, agg Aggregator, wantGrad bool) (value float64, grad []float64)
}
