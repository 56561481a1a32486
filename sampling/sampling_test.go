package sampling

import (
	"math"
	"testing"

	"github.com/gonum-contrib/bayesopt/internal/numutil"
)

func TestRandomSamplingBoundsAndCount(t *testing.T) {
	rng := numutil.NewSeededRNG(1)
	pts := NewRandomSampling(RandomSamplingConfig{Samples: 20}).Points(3, rng)
	if len(pts) != 20 {
		t.Fatalf("got %d points, want 20", len(pts))
	}
	for _, x := range pts {
		for _, v := range x {
			if v < 0 || v >= 1 {
				t.Errorf("coordinate %v out of [0,1)", v)
			}
		}
	}
}

// TestLHSStratumUniqueness is the "random_lhs(3,12) stratum uniqueness"
// scenario: across 100 seeds, each axis's projection must visit every one
// of the 12 strata exactly once.
func TestLHSStratumUniqueness(t *testing.T) {
	const dim, n = 3, 12
	for seed := uint64(0); seed < 100; seed++ {
		rng := numutil.NewSeededRNG(seed)
		pts := NewLHS(LHSConfig{Samples: n}).Points(dim, rng)
		if len(pts) != n {
			t.Fatalf("seed %d: got %d points, want %d", seed, len(pts), n)
		}
		for d := 0; d < dim; d++ {
			seen := make([]bool, n)
			for _, x := range pts {
				stratum := int(x[d] * n)
				if stratum < 0 || stratum >= n {
					t.Fatalf("seed %d axis %d: coordinate %v maps outside [0,%d)", seed, d, x[d], n)
				}
				if seen[stratum] {
					t.Fatalf("seed %d axis %d: stratum %d visited twice", seed, d, stratum)
				}
				seen[stratum] = true
			}
			for s, ok := range seen {
				if !ok {
					t.Fatalf("seed %d axis %d: stratum %d never visited", seed, d, s)
				}
			}
		}
	}
}

func TestGridSamplingEnumeratesFullGrid(t *testing.T) {
	rng := numutil.NewSeededRNG(7)
	pts := NewGridSampling(GridSamplingConfig{Bins: 4}).Points(2, rng)
	if len(pts) != 16 {
		t.Fatalf("got %d points, want 4^2=16", len(pts))
	}
	for _, x := range pts {
		for _, v := range x {
			if v < 0 || v > 1 {
				t.Errorf("coordinate %v out of [0,1]", v)
			}
		}
	}
}

func TestRandomSamplingGridSubsetOfGrid(t *testing.T) {
	rng := numutil.NewSeededRNG(3)
	grid := gridPoints(2, 5)
	pts := NewRandomSamplingGrid(RandomSamplingGridConfig{Samples: 6, Bins: 5}).Points(2, rng)
	if len(pts) != 6 {
		t.Fatalf("got %d points, want 6", len(pts))
	}
	for _, x := range pts {
		found := false
		for _, g := range grid {
			if math.Abs(x[0]-g[0]) < 1e-12 && math.Abs(x[1]-g[1]) < 1e-12 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("point %v not found in the full grid", x)
		}
	}
}

func TestNoInitGeneratesNothing(t *testing.T) {
	rng := numutil.NewSeededRNG(0)
	pts := NoInit{}.Points(3, rng)
	if len(pts) != 0 {
		t.Errorf("got %d points, want 0", len(pts))
	}
}
