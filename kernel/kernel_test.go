package kernel

import (
	"math"
	"testing"
)

func allKernels() map[string]Kernel {
	return map[string]Kernel{
		"exp":      NewExp(1, 1, 0.01, false),
		"matern32": NewMatern32(1, 1, 0.01, false),
		"matern52": NewMatern52(1, 1, 0.01, false),
		"sqexpard": NewSquaredExpARD(2, []float64{1, 1.5}, 1, 1, 0.01, false),
	}
}

func TestDiagonalNonNegative(t *testing.T) {
	x := []float64{0.3, 0.7}
	for name, k := range allKernels() {
		v := k.Cov(x, x)
		if v < 0 {
			t.Errorf("%s: k(x,x) = %v, want >= 0", name, v)
		}
	}
}

func TestCovNoisyDiagonalIncludesNoiseAndJitter(t *testing.T) {
	x := []float64{0.3, 0.7}
	for name, k := range allKernels() {
		plain := k.Cov(x, x)
		noisy := k.CovNoisy(x, x, 0, 0)
		want := plain + k.Noise() + Jitter
		if math.Abs(noisy-want) > 1e-12 {
			t.Errorf("%s: CovNoisy diagonal = %v, want %v", name, noisy, want)
		}
		offDiag := k.CovNoisy(x, x, 0, 1)
		if math.Abs(offDiag-plain) > 1e-12 {
			t.Errorf("%s: CovNoisy off-diagonal = %v, want %v (no noise)", name, offDiag, plain)
		}
	}
}

func TestGramMatrixPSD(t *testing.T) {
	pts := [][]float64{{0.1, 0.2}, {0.4, 0.1}, {0.9, 0.9}, {0.5, 0.5}}
	for name, k := range allKernels() {
		n := len(pts)
		K := make([][]float64, n)
		for i := range K {
			K[i] = make([]float64, n)
			for j := range K[i] {
				K[i][j] = k.CovNoisy(pts[i], pts[j], i, j)
			}
		}
		if !isSymmetric(K) {
			t.Errorf("%s: Gram matrix not symmetric", name)
		}
		if !isPSDBySimpleCholesky(K) {
			t.Errorf("%s: Gram matrix not PSD", name)
		}
	}
}

func isSymmetric(K [][]float64) bool {
	n := len(K)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(K[i][j]-K[j][i]) > 1e-9 {
				return false
			}
		}
	}
	return true
}

// isPSDBySimpleCholesky attempts a plain Cholesky factorization without any
// jitter retries: kernels are required to already be PSD once CovNoisy's
// jitter is included.
func isPSDBySimpleCholesky(K [][]float64) bool {
	n := len(K)
	L := make([][]float64, n)
	for i := range L {
		L[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := K[i][j]
			for p := 0; p < j; p++ {
				sum -= L[i][p] * L[j][p]
			}
			if i == j {
				if sum <= 0 {
					return false
				}
				L[i][j] = math.Sqrt(sum)
			} else {
				L[i][j] = sum / L[j][j]
			}
		}
	}
	return true
}

func TestGradientFiniteDifference(t *testing.T) {
	x := []float64{0.2, 0.6}
	y := []float64{0.5, 0.1}
	const h = 1e-6
	for name, k := range allKernels() {
		theta := append([]float64(nil), k.Params()...)
		grad := k.Gradient(x, y)
		for p := range theta {
			plus := append([]float64(nil), theta...)
			minus := append([]float64(nil), theta...)
			plus[p] += h
			minus[p] -= h
			k.SetParams(plus)
			fp := k.Cov(x, y)
			k.SetParams(minus)
			fm := k.Cov(x, y)
			k.SetParams(theta)
			fd := (fp - fm) / (2 * h)
			if math.Abs(fd-grad[p]) > 1e-3*(1+math.Abs(fd)) {
				t.Errorf("%s: param %d gradient = %v, finite-diff = %v", name, p, grad[p], fd)
			}
		}
	}
}
