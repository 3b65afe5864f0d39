package rng

import "testing"

// sequenceRNG is a minimal deterministic generator for exercising Base's
// fallback SkipTo: each draw is just the draw index, broadcast across
// the vector.
type sequenceRNG struct {
	Base
	dim int
	pos int64
}

func newSequenceRNG(dim int) *sequenceRNG {
	r := &sequenceRNG{dim: dim}
	r.Base = Base{Next: r.next, Dim: func() int { return r.dim }}
	return r
}

func (r *sequenceRNG) next(out []float64) {
	for i := range out {
		out[i] = float64(r.pos)
	}
	r.pos++
}

func TestBaseSkipToMatchesRepeatedNext(t *testing.T) {
	direct := newSequenceRNG(3)
	out := make([]float64, 3)
	for i := 0; i < 5; i++ {
		direct.next(out) // discard draws 0..4
	}
	direct.next(out) // draw 5, the one SkipTo(5) should land on
	wantDrawFive := out[0]

	skipped := newSequenceRNG(3)
	skipped.SkipTo(5)
	skipped.next(out)

	if out[0] != wantDrawFive {
		t.Fatalf("after SkipTo(5) next() = %v, want %v", out[0], wantDrawFive)
	}
}

func TestBaseSkipToZeroIsNoop(t *testing.T) {
	r := newSequenceRNG(1)
	r.SkipTo(0)
	out := make([]float64, 1)
	r.next(out)
	if out[0] != 0 {
		t.Fatalf("next() after SkipTo(0) = %v, want 0", out[0])
	}
}
