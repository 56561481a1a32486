package gp

import (
	"math"
	"testing"

	"github.com/gonum-contrib/bayesopt/kernel"
	"github.com/gonum-contrib/bayesopt/mean"
)

func newTestGP() *GP {
	k := kernel.NewMatern52(0.3, 1.0, 0.01, false)
	m := mean.NewNullFunction(1)
	return New(2, k, m)
}

func TestEmptyGPDegeneratePrediction(t *testing.T) {
	k := kernel.NewExp(0.3, 1.0, 0.01, false)
	m := mean.NewConstant(1, 2.0)
	g := New(2, k, m)
	g.Compute(nil, nil)

	x := []float64{0.4, 0.6}
	mu, sigma2 := g.Predict(x)
	if mu != 2.0 {
		t.Errorf("mu = %v, want m(x) = 2", mu)
	}
	want := k.Cov(x, x)
	if math.Abs(sigma2-want) > 1e-12 {
		t.Errorf("sigma2 = %v, want k(x,x) = %v", sigma2, want)
	}
}

func TestPredictAtTrainingPointMatchesObservation(t *testing.T) {
	g := newTestGP()
	samples := [][]float64{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.2}}
	obs := []float64{0.3, -0.2, 1.1}
	g.Compute(samples, obs)

	for i, x := range samples {
		mu, sigma2 := g.Predict(x)
		if math.Abs(mu-obs[i]) > 1e-3 {
			t.Errorf("point %d: mu = %v, want ~%v", i, mu, obs[i])
		}
		noiseFloor := g.kern.Noise() + kernel.Jitter
		if sigma2 > noiseFloor+1e-3 {
			t.Errorf("point %d: sigma2 = %v, want near noise floor %v", i, sigma2, noiseFloor)
		}
	}
}

func TestLogLikFiniteAfterCompute(t *testing.T) {
	g := newTestGP()
	g.Compute([][]float64{{0.1, 0.2}, {0.4, 0.9}}, []float64{0.5, -0.1})
	ll := g.LogLik()
	if math.IsNaN(ll) || math.IsInf(ll, 0) {
		t.Errorf("LogLik = %v, want finite", ll)
	}
}

func TestAddSampleRejectsNaN(t *testing.T) {
	g := newTestGP()
	g.Compute([][]float64{{0.1, 0.2}}, []float64{0.5})
	err := g.AddSample([]float64{0.3, 0.3}, math.NaN())
	if err == nil {
		t.Fatal("expected EvaluationError, got nil")
	}
	if g.NumSamples() != 1 {
		t.Errorf("NumSamples() = %d after rejected AddSample, want 1", g.NumSamples())
	}
}

func TestIncrementalMatchesFullRecompute(t *testing.T) {
	samples := [][]float64{
		{0.1, 0.1}, {0.2, 0.8}, {0.5, 0.5}, {0.9, 0.1},
		{0.3, 0.6}, {0.7, 0.7}, {0.05, 0.95}, {0.6, 0.2},
	}
	obs := []float64{0.1, 0.4, -0.2, 0.9, 0.0, 0.3, -0.5, 0.2}

	incremental := newTestGP()
	incremental.Compute(samples[:1], obs[:1])
	for i := 1; i < len(samples); i++ {
		if err := incremental.AddSample(samples[i], obs[i]); err != nil {
			t.Fatalf("AddSample(%d): %v", i, err)
		}
	}

	full := newTestGP()
	full.Compute(samples, obs)

	probe := []float64{0.42, 0.37}
	muInc, sigmaInc := incremental.Predict(probe)
	muFull, sigmaFull := full.Predict(probe)

	if math.Abs(muInc-muFull) > 1e-6 {
		t.Errorf("mu incremental = %v, full = %v", muInc, muFull)
	}
	if math.Abs(sigmaInc-sigmaFull) > 1e-6 {
		t.Errorf("sigma2 incremental = %v, full = %v", sigmaInc, sigmaFull)
	}
	if math.Abs(incremental.LogLik()-full.LogLik()) > 1e-5 {
		t.Errorf("LogLik incremental = %v, full = %v", incremental.LogLik(), full.LogLik())
	}
}

func TestLOOCVFiniteAfterCompute(t *testing.T) {
	g := newTestGP()
	g.Compute([][]float64{{0.1, 0.2}, {0.4, 0.9}, {0.6, 0.3}}, []float64{0.5, -0.1, 0.2})
	loo := g.LOOCV()
	if math.IsNaN(loo) || math.IsInf(loo, 0) {
		t.Errorf("LOOCV = %v, want finite", loo)
	}
}
