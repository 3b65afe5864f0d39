// Package testmodels provides small, concrete Product and Model
// implementations used by the simulator's own tests: a single-asset
// Black-Scholes diffusion, a Merton jump-diffusion variant, a European
// call payoff, and a reference Gaussian generator. None of these are
// part of the exported simulation core — concrete models, products and
// RNGs are the host application's job — but the simulator needs
// something concrete to drive in its own test suite.
package testmodels

import (
	"math"

	"github.com/wyfcoding/mcaad/internal/mcmodel"
	"github.com/wyfcoding/mcaad/internal/tape"
)

// BlackScholesModel is single-asset geometric Brownian motion under the
// forward measure: no drift term beyond the convexity correction, one
// Gaussian shock per timeline step. Its two parameters, Spot0 and Vol,
// are exposed through Parameters() for sensitivity reporting.
type BlackScholesModel[T mcmodel.Scalar[T]] struct {
	spot0, vol0 float64

	spot, vol   T
	onTape      bool
	timeline    []mcmodel.Time
	dt, sqrtDt  []float64
}

// NewBlackScholesModel constructs a model with initial spot spot0 and
// lognormal volatility vol0.
func NewBlackScholesModel[T mcmodel.Scalar[T]](spot0, vol0 float64) *BlackScholesModel[T] {
	return &BlackScholesModel[T]{spot0: spot0, vol0: vol0}
}

func (m *BlackScholesModel[T]) PutOnTape(t *tape.Tape) {
	var zero T
	m.spot = zero.OnTape(t, m.spot0)
	m.vol = zero.OnTape(t, m.vol0)
	m.onTape = true
}

func (m *BlackScholesModel[T]) Init(productTimeline []mcmodel.Time) {
	if !m.onTape {
		var zero T
		m.spot = zero.OnTape(nil, m.spot0)
		m.vol = zero.OnTape(nil, m.vol0)
	}

	m.timeline = productTimeline
	m.dt = make([]float64, len(productTimeline))
	m.sqrtDt = make([]float64, len(productTimeline))
	prev := 0.0
	for i, t := range productTimeline {
		m.dt[i] = t - prev
		m.sqrtDt[i] = math.Sqrt(m.dt[i])
		prev = t
	}
}

func (m *BlackScholesModel[T]) SimDim() int { return len(m.timeline) }

func (m *BlackScholesModel[T]) GeneratePath(gaussVec []float64, path mcmodel.Path[T]) {
	current := m.spot
	for i, dt := range m.dt {
		diffusion := m.vol.MulConst(m.sqrtDt[i] * gaussVec[i])
		convexity := m.vol.Mul(m.vol).MulConst(0.5 * dt)
		current = current.Mul(diffusion.Sub(convexity).Exp())
		path[i].Spot = current
	}
}

func (m *BlackScholesModel[T]) Parameters() []T { return []T{m.spot, m.vol} }

func (m *BlackScholesModel[T]) Clone() mcmodel.Model[T] {
	return &BlackScholesModel[T]{spot0: m.spot0, vol0: m.vol0}
}
