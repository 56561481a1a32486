package kernel

import "math"

// SquaredExpARD is the automatic-relevance-determination squared-exponential
// kernel with an optional low-rank correction:
//
//	M = Lambda*Lambda^T + diag(l_1^-2, ..., l_d^-2)
//	k(x,y) = sigma^2 * exp(-0.5 * (x-y)^T M (x-y))
//
// Lambda is a d x rank matrix (rank may be 0, disabling the correction).
// Hyperparameters, in log-space order, are (log l_1..log l_d, vec(Lambda),
// log sqrt(sigma^2)).
type SquaredExpARD struct {
	dim      int
	rank     int
	logL     []float64   // length dim
	lambda   []float64   // length dim*rank, row-major (dim rows, rank cols)
	logSqrtS float64
	noiseParam
}

// NewSquaredExpARD builds an ARD kernel for the given input dimension. l is
// the initial per-dimension length scale (broadcast if len(l)==1), rank is
// the number of low-rank correction columns (0 disables it).
func NewSquaredExpARD(dim int, l []float64, sigmaSq float64, rank int, noise float64, optimizeNoise bool) *SquaredExpARD {
	logL := make([]float64, dim)
	for i := 0; i < dim; i++ {
		v := l[0]
		if len(l) == dim {
			v = l[i]
		}
		logL[i] = math.Log(v)
	}
	return &SquaredExpARD{
		dim:        dim,
		rank:       rank,
		logL:       logL,
		lambda:     make([]float64, dim*rank),
		logSqrtS:   0.5 * math.Log(sigmaSq),
		noiseParam: newNoiseParam(noise, optimizeNoise),
	}
}

func (k *SquaredExpARD) sigmaSq() float64 { return math.Exp(2 * k.logSqrtS) }

// mahalanobis returns (x-y)^T M (x-y) and the diff vector, reused by Cov and
// Gradient.
func (k *SquaredExpARD) mahalanobis(x, y []float64) (float64, []float64) {
	diff := make([]float64, k.dim)
	for i := range diff {
		diff[i] = x[i] - y[i]
	}
	var q float64
	for i := 0; i < k.dim; i++ {
		li := math.Exp(k.logL[i])
		q += diff[i] * diff[i] / (li * li)
	}
	if k.rank > 0 {
		// Add diff^T Lambda Lambda^T diff = ||Lambda^T diff||^2.
		proj := make([]float64, k.rank)
		for i := 0; i < k.dim; i++ {
			for r := 0; r < k.rank; r++ {
				proj[r] += k.lambda[i*k.rank+r] * diff[i]
			}
		}
		for r := 0; r < k.rank; r++ {
			q += proj[r] * proj[r]
		}
	}
	return q, diff
}

func (k *SquaredExpARD) Cov(x, y []float64) float64 {
	q, _ := k.mahalanobis(x, y)
	return k.sigmaSq() * math.Exp(-0.5*q)
}

func (k *SquaredExpARD) CovNoisy(x, y []float64, i, j int) float64 {
	return k.Cov(x, y) + k.diag(i, j)
}

func (k *SquaredExpARD) Params() []float64 {
	p := make([]float64, 0, k.NumParams())
	p = append(p, k.logL...)
	p = append(p, k.lambda...)
	p = append(p, k.logSqrtS)
	if k.optimize {
		p = append(p, k.logNoise)
	}
	return p
}

func (k *SquaredExpARD) NumParams() int {
	n := k.dim + k.dim*k.rank + 1
	if k.optimize {
		n++
	}
	return n
}

func (k *SquaredExpARD) SetParams(theta []float64) {
	if len(theta) != k.NumParams() {
		panic("kernel: wrong number of parameters for SquaredExpARD")
	}
	copy(k.logL, theta[:k.dim])
	copy(k.lambda, theta[k.dim:k.dim+k.dim*k.rank])
	k.logSqrtS = theta[k.dim+k.dim*k.rank]
	if k.optimize {
		k.setNoise(theta[len(theta)-1])
	}
}

// Gradient returns d k(x,y) / d theta for (log l_1..log l_d, vec(Lambda), log sqrt(sigma^2)).
func (k *SquaredExpARD) Gradient(x, y []float64) []float64 {
	q, diff := k.mahalanobis(x, y)
	kv := k.sigmaSq() * math.Exp(-0.5*q)

	grad := make([]float64, 0, k.dim+k.dim*k.rank+1)
	for i := 0; i < k.dim; i++ {
		li := math.Exp(k.logL[i])
		// d q / d(log l_i) = -2 * diff_i^2 / l_i^2 (since l_i^-2 scales as exp(-2 log l_i))
		dq := -2 * diff[i] * diff[i] / (li * li)
		grad = append(grad, -0.5*kv*dq)
	}
	if k.rank > 0 {
		proj := make([]float64, k.rank)
		for i := 0; i < k.dim; i++ {
			for r := 0; r < k.rank; r++ {
				proj[r] += k.lambda[i*k.rank+r] * diff[i]
			}
		}
		for i := 0; i < k.dim; i++ {
			for r := 0; r < k.rank; r++ {
				// d q / d Lambda_{ir} = 2 * diff_i * proj_r
				dq := 2 * diff[i] * proj[r]
				grad = append(grad, -0.5*kv*dq)
			}
		}
	}
	grad = append(grad, 2*kv)
	return grad
}

func (k *SquaredExpARD) GradientNoisy(x, y []float64, i, j int) []float64 {
	g := k.Gradient(x, y)
	if k.optimize {
		g = append(g, k.noiseGradEntry(i, j))
	}
	return g
}

func (k *SquaredExpARD) Noise() float64      { return k.noiseParam.sigmaSq() }
func (k *SquaredExpARD) OptimizeNoise() bool { return k.optimize }
