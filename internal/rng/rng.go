// Package rng defines the random-number generator contract the
// simulator drives. Concrete generators (Sobol, Mersenne Twister, ...)
// are host-supplied; this package only specifies the interface and a
// default, functional (not necessarily fast) implementation of SkipTo
// that any concrete generator can embed for free.
package rng

// RNG generates independent standard-normal vectors of a fixed
// dimension, with deterministic skip-ahead so a parallel simulator can
// hand each batch a disjoint, reproducible sub-stream.
type RNG interface {
	// Init configures the generator for vectors of length simDim. May
	// be called more than once to reconfigure and reset state.
	Init(simDim int)

	// SimDim returns the configured vector length.
	SimDim() int

	// NextG fills out (length SimDim()) with independent standard
	// normals and advances the internal draw counter by one.
	NextG(out []float64)

	// SkipTo advances state so the next NextG call returns draw number
	// n (0-based), deterministically and consistently with repeated
	// NextG calls reaching the same position.
	SkipTo(n int64)

	// Clone returns an independent copy at the same state.
	Clone() RNG
}

// Base is an embeddable helper supplying the minimum-correctness SkipTo
// required by spec: advance by discarding draws. Concrete generators
// that can skip in sub-linear time should implement SkipTo themselves
// instead of embedding Base; generators that cannot still get correct
// (if O(n)) skip-ahead for free.
type Base struct {
	Next func(out []float64)
	Dim  func() int
}

// SkipTo implements the fallback: discard n draws one at a time.
func (b Base) SkipTo(n int64) {
	dummy := make([]float64, b.Dim())
	for i := int64(0); i < n; i++ {
		b.Next(dummy)
	}
}
