// SPDX-License-Identifier: MIT

// Package gen - deterministic synthetic point sets for tests, benchmarks and
// examples.
//
// Goals:
//   - Determinism: same seed ⇒ identical data on every platform and Go
//     release (the stream is SplitMix64, not math/rand's algorithm).
//   - Encapsulation: a single generator; no time-based sources anywhere.
//   - Independent substreams: Derive mixes a parent seed and a stream id.
//
// Concurrency:
//   - A *Source is NOT goroutine-safe. Derive one Source per goroutine.
package gen

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

const (
	golden = 0x9e3779b97f4a7c15
	mix1   = 0xbf58476d1ce4e5b9
	mix2   = 0x94d049bb133111eb
)

// Source is a SplitMix64 generator. It implements rand.Source64, so it can
// drive a *rand.Rand when other distributions are needed.
type Source struct {
	state uint64
}

var _ rand.Source64 = (*Source)(nil)

// NewSource returns a Source seeded with seed (seed==0 ⇒ DefaultSeed).
func NewSource(seed int64) *Source {
	src := &Source{}
	src.Seed(seed)

	return src
}

// Seed resets the stream.
func (s *Source) Seed(seed int64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	s.state = uint64(seed)
}

// Uint64 returns the next 64 random bits.
//
// Complexity: O(1).
func (s *Source) Uint64() uint64 {
	s.state += golden
	z := s.state
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2

	return z ^ (z >> 31)
}

// Int63 returns a non-negative 63-bit value.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Float64 returns a value in [0, 1) with 53 random bits.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) * 0x1p-53
}

// Derive mixes a parent seed and a stream identifier into an independent
// seed (SplitMix64 finaliser).
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + golden)
	x += golden
	x = (x ^ (x >> 30)) * mix1
	x = (x ^ (x >> 27)) * mix2
	x ^= x >> 31

	return int64(x)
}

// Points returns n points of dimension d with coordinates uniform in [0, 1).
// Non-positive d or n yield nil.
//
// Complexity: O(n·d).
func Points(d, n int, seed int64) [][]float64 {
	if d <= 0 || n <= 0 {
		return nil
	}

	var (
		src  = NewSource(seed)
		data = make([]float64, n*d)
		out  = make([][]float64, n)
	)
	for i := range data {
		data[i] = src.Float64()
	}
	for i := range out {
		out[i] = data[i*d : (i+1)*d : (i+1)*d]
	}

	return out
}

// Uint8Points returns n points of dimension d with byte coordinates, the
// narrow encoding accepted by geomed.FromValues.
//
// Complexity: O(n·d).
func Uint8Points(d, n int, seed int64) [][]uint8 {
	if d <= 0 || n <= 0 {
		return nil
	}

	src := NewSource(seed)
	out := make([][]uint8, n)
	for i := range out {
		out[i] = make([]uint8, d)
		for k := range out[i] {
			out[i][k] = uint8(src.Uint64() >> 56)
		}
	}

	return out
}
