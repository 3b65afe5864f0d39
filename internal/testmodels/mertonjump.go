package testmodels

import (
	"math"

	"github.com/wyfcoding/mcaad/internal/mcmodel"
	"github.com/wyfcoding/mcaad/internal/tape"
)

// MertonModel is single-asset jump-diffusion under the forward measure:
// a lognormal diffusion compounded with a compensated compound Poisson
// jump process. It consumes three Gaussians per timeline step: one for
// the diffusion shock, one thinned against the jump probability via the
// standard normal CDF to decide whether a jump fires in that step, and
// one for the jump's own log-size.
type MertonModel[T mcmodel.Scalar[T]] struct {
	spot0, vol0, intens0, meanJump0, stdJump0 float64

	spot, vol, intens, meanJump, stdJump T
	onTape                               bool

	timeline   []mcmodel.Time
	dt, sqrtDt []float64
}

// NewMertonModel constructs a jump-diffusion model: spot0 and vol0 drive
// the diffusion leg; intens0 is the jump arrival rate per year;
// meanJump0 and stdJump0 are the mean and stdev of each jump's log-size.
func NewMertonModel[T mcmodel.Scalar[T]](spot0, vol0, intens0, meanJump0, stdJump0 float64) *MertonModel[T] {
	return &MertonModel[T]{
		spot0: spot0, vol0: vol0,
		intens0: intens0, meanJump0: meanJump0, stdJump0: stdJump0,
	}
}

func (m *MertonModel[T]) PutOnTape(t *tape.Tape) {
	var zero T
	m.spot = zero.OnTape(t, m.spot0)
	m.vol = zero.OnTape(t, m.vol0)
	m.intens = zero.OnTape(t, m.intens0)
	m.meanJump = zero.OnTape(t, m.meanJump0)
	m.stdJump = zero.OnTape(t, m.stdJump0)
	m.onTape = true
}

func (m *MertonModel[T]) Init(productTimeline []mcmodel.Time) {
	if !m.onTape {
		var zero T
		m.spot = zero.OnTape(nil, m.spot0)
		m.vol = zero.OnTape(nil, m.vol0)
		m.intens = zero.OnTape(nil, m.intens0)
		m.meanJump = zero.OnTape(nil, m.meanJump0)
		m.stdJump = zero.OnTape(nil, m.stdJump0)
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

// SimDim reserves three Gaussians per step: diffusion shock, jump gate,
// jump size.
func (m *MertonModel[T]) SimDim() int { return 3 * len(m.timeline) }

func (m *MertonModel[T]) GeneratePath(gaussVec []float64, path mcmodel.Path[T]) {
	current := m.spot
	// Jump compensator intens*(E[exp(logJump)] - 1), charged as a drift
	// of -comp*dt per step so the jumps do not move the forward.
	comp := m.meanJump.Add(m.stdJump.Mul(m.stdJump).MulConst(0.5)).Exp().SubConst(1).Mul(m.intens)
	for i, dt := range m.dt {
		gDiff, gGate, gSize := gaussVec[3*i], gaussVec[3*i+1], gaussVec[3*i+2]

		diffusion := m.vol.MulConst(m.sqrtDt[i] * gDiff)
		convexity := m.vol.Mul(m.vol).MulConst(0.5 * dt)
		current = current.Mul(diffusion.Sub(convexity).Sub(comp.MulConst(dt)).Exp())

		// Thin a standard-normal draw into a uniform and test it
		// against the jump probability for this step: an Euler
		// approximation of Poisson jump arrivals, exact in the limit
		// of small dt.
		uniform := normalCdf(gGate)
		jumpProb := m.intens.MulConst(dt)
		if uniform < jumpProb.Value() {
			logJump := m.stdJump.MulConst(gSize).Add(m.meanJump)
			current = current.Mul(logJump.Exp())
		}

		path[i].Spot = current
	}
}

func (m *MertonModel[T]) Parameters() []T {
	return []T{m.spot, m.vol, m.intens, m.meanJump, m.stdJump}
}

func (m *MertonModel[T]) Clone() mcmodel.Model[T] {
	return &MertonModel[T]{
		spot0: m.spot0, vol0: m.vol0,
		intens0: m.intens0, meanJump0: m.meanJump0, stdJump0: m.stdJump0,
	}
}

func normalCdf(x float64) float64 { return 0.5 * (1 + math.Erf(x/math.Sqrt2)) }
