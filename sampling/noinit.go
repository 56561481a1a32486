package sampling

import "github.com/gonum-contrib/bayesopt/internal/numutil"

// NoInit generates no points; the optimizer starts from whatever samples the
// caller has already added (spec §4.9).
type NoInit struct{}

func (NoInit) Points(dimIn int, rng *numutil.RNG) [][]float64 { return nil }
