// Package heuristic - RNG utilities shared by the metaheuristics.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single Source factory; no time-based seeding anywhere.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share a Source across goroutines.
//   - Use DeriveSource to create independent streams for parallel runs.
package heuristic

import (
	"math"
	"math/rand/v2"
)

// Source is the randomness a metaheuristic consumes. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
	NormFloat64() float64
}

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed uint64 = 1

// NewSource returns a deterministic PCG-backed generator.
// Policy: seed==0 ⇒ defaultSeed. The second PCG word is a SplitMix64 mix of
// the seed, so nearby seeds give unrelated streams.
//
// Complexity: O(1).
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewPCG(seed, splitMix(seed, 0)))
}

// DeriveSource creates an independent stream from base and a stream id.
// base is advanced once so repeated derivations with the same id differ.
// A nil base derives from defaultSeed.
//
// Complexity: O(1).
func DeriveSource(base Source, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = uint64(base.IntN(math.MaxInt))
	}

	return NewSource(splitMix(parent, stream+1))
}

// splitMix mixes a parent seed and a stream identifier with the SplitMix64
// finalizer (Vigna 2014).
func splitMix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// orDefault returns src, or NewSource(0) when src is nil.
func orDefault(src Source) Source {
	if src == nil {
		return NewSource(0)
	}

	return src
}
