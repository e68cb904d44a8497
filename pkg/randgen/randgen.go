// Package randgen generates reproducible random test/benchmark input
// vectors. Seeded generation backs the cmd/argminmaxbench bench and gen
// subcommands.
package randgen

import (
	"math"

	"golang.org/x/exp/rand"
)

// Int32 returns n deterministic int32 values seeded by seed.
func Int32(seed uint64, n int) []int32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int32, n)
	for i := range out {
		out[i] = rng.Int31() - (1 << 30)
	}
	return out
}

// Float64WithNaNs returns n deterministic float64 values seeded by seed,
// injecting a NaN at roughly nanFraction of positions (0 disables NaNs
// entirely).
func Float64WithNaNs(seed uint64, n int, nanFraction float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		if nanFraction > 0 && rng.Float64() < nanFraction {
			out[i] = math.NaN()
			continue
		}
		out[i] = rng.NormFloat64() * 1e6
	}
	return out
}

// Uint8 returns n deterministic uint8 values seeded by seed, the element
// type whose small MAX_INDEX forces the segmentation path in pkg/kernel.
func Uint8(seed uint64, n int) []uint8 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(rng.Intn(256))
	}
	return out
}
