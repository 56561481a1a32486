package gp

import (
	"testing"

	"github.com/gonum-contrib/bayesopt/kernel"
	"github.com/gonum-contrib/bayesopt/mean"
)

func TestSparseGPCapsDatasetSize(t *testing.T) {
	inner := NewMultiGPUniform(1, 1,
		func() kernel.Kernel { return kernel.NewExp(0.3, 1.0, 0.01, false) },
		func() mean.Mean { return mean.NewNullFunction(1) })
	s := NewSparseGP(inner, 5)

	for i := 0; i < 12; i++ {
		x := []float64{float64(i) / 12}
		if err := s.AddSample(x, []float64{x[0]}); err != nil {
			t.Fatalf("AddSample(%d): %v", i, err)
		}
	}
	if len(s.samples) != 5 {
		t.Errorf("len(samples) = %d, want 5", len(s.samples))
	}
	if s.inner.Output(0).NumSamples() != 5 {
		t.Errorf("inner NumSamples() = %d, want 5", s.inner.Output(0).NumSamples())
	}
}
