package testmodels

import (
	"math"
	"testing"
)

func TestGaussianRNGCloneReproducesSameStream(t *testing.T) {
	a := NewGaussianRNG(5, 7)
	a.Init(4)
	b := a.Clone()

	outA := make([]float64, 4)
	outB := make([]float64, 4)
	a.NextG(outA)
	b.NextG(outB)

	for i := range outA {
		if outA[i] != outB[i] {
			t.Fatalf("clone diverged at index %d: %v vs %v", i, outA[i], outB[i])
		}
	}
}

func TestGaussianRNGSkipToMatchesManualAdvance(t *testing.T) {
	a := NewGaussianRNG(1, 2)
	a.Init(2)
	out := make([]float64, 2)
	for i := 0; i < 3; i++ {
		a.NextG(out)
	}
	want := append([]float64{}, out...)

	b := NewGaussianRNG(1, 2)
	b.Init(2)
	b.SkipTo(2)
	b.NextG(out)

	if out[0] != want[0] || out[1] != want[1] {
		t.Fatalf("SkipTo(2) then NextG = %v, want %v", out, want)
	}
}

func TestGaussianRNGProducesFiniteValues(t *testing.T) {
	r := NewGaussianRNG(9, 9)
	r.Init(100)
	out := make([]float64, 100)
	r.NextG(out)
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("out[%d] = %v, want a finite number", i, v)
		}
	}
}
