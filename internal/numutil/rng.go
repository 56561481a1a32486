// Package numutil provides the small set of numeric plumbing shared by the
// kernel, gp, inneropt, sampling, fitter, stopcrit and bayesopt packages: a per-task RNG,
// bounded parallel fan-out, and vector helpers that complement
// gonum.org/v1/gonum/floats rather than duplicate it.
package numutil

import (
	"crypto/rand"
	"encoding/binary"

	xrand "golang.org/x/exp/rand"
)

// RNG is a per-task random source. It is not safe for concurrent use; callers
// that fan out across goroutines (ParallelRepeater, MultiGP, sparsification)
// must give each worker its own RNG, typically via Child.
type RNG struct {
	src *xrand.Rand
}

// NewRNG returns an auto-seeded RNG, seeded from the OS CSPRNG so that two
// processes started at the same wall-clock instant do not share a seed.
func NewRNG() *RNG {
	return NewSeededRNG(cryptoSeed())
}

// NewSeededRNG returns a deterministic RNG for a given seed, for reproducible
// tests and reproducible optimization runs.
func NewSeededRNG(seed uint64) *RNG {
	return &RNG{src: xrand.New(xrand.NewSource(seed))}
}

func cryptoSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand is not expected to fail on supported platforms; fall
		// back to a fixed seed rather than leaving the RNG uninitialized.
		return 0x9e3779b97f4a7c15
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Float64 returns a uniform sample in [0,1).
func (r *RNG) Float64() float64 { return r.src.Float64() }

// Uniform returns a uniform sample in [lo,hi).
func (r *RNG) Uniform(lo, hi float64) float64 { return lo + (hi-lo)*r.src.Float64() }

// NormFloat64 returns a standard-normal sample.
func (r *RNG) NormFloat64() float64 { return r.src.NormFloat64() }

// Perm returns a random permutation of [0,n).
func (r *RNG) Perm(n int) []int { return r.src.Perm(n) }

// Intn returns a uniform sample in [0,n).
func (r *RNG) Intn(n int) int { return r.src.Intn(n) }

// UniformVector fills dst (length d) with i.i.d. uniform samples in [0,1).
func (r *RNG) UniformVector(dst []float64) {
	for i := range dst {
		dst[i] = r.src.Float64()
	}
}

// Child derives an independent RNG for a concurrent worker. Derivation is
// deterministic given the parent's state so that seeded runs stay
// reproducible regardless of how many workers are spawned.
func (r *RNG) Child() *RNG {
	return NewSeededRNG(r.src.Uint64())
}
