package testmodels

import (
	"math"
	"math/rand/v2"

	"github.com/wyfcoding/mcaad/internal/rng"
)

// GaussianRNG is a reference RNG backed by math/rand/v2's PCG source:
// deterministic given a seed, with no sub-linear skip-ahead, so it
// embeds rng.Base for the fallback discard-by-discard SkipTo.
type GaussianRNG struct {
	rng.Base
	source *rand.Rand
	seed1  uint64
	seed2  uint64
	simDim int
}

// NewGaussianRNG seeds a generator deterministically from (seed1, seed2).
func NewGaussianRNG(seed1, seed2 uint64) *GaussianRNG {
	g := &GaussianRNG{seed1: seed1, seed2: seed2}
	g.source = rand.New(rand.NewPCG(seed1, seed2))
	g.Base = rng.Base{Next: g.nextG, Dim: g.dim}
	return g
}

func (g *GaussianRNG) Init(simDim int) {
	g.simDim = simDim
	g.source = rand.New(rand.NewPCG(g.seed1, g.seed2))
}

func (g *GaussianRNG) SimDim() int { return g.simDim }

func (g *GaussianRNG) dim() int { return g.simDim }

// nextG fills out with independent standard normals via the
// Box-Muller transform, two draws at a time.
func (g *GaussianRNG) nextG(out []float64) {
	for i := 0; i < len(out); i += 2 {
		u1, u2 := g.source.Float64(), g.source.Float64()
		r := math.Sqrt(-2 * math.Log(u1))
		theta := 2 * math.Pi * u2
		out[i] = r * math.Cos(theta)
		if i+1 < len(out) {
			out[i+1] = r * math.Sin(theta)
		}
	}
}

func (g *GaussianRNG) NextG(out []float64) { g.nextG(out) }

// Clone returns an independent generator at the same (unconsumed) state.
// Every Clone call site in this module clones a generator before any
// draws have been taken from it, so reseeding from the original
// (seed1, seed2) is exact, not approximate.
func (g *GaussianRNG) Clone() rng.RNG {
	c := NewGaussianRNG(g.seed1, g.seed2)
	c.Init(g.simDim)
	return c
}
