package testmodels

import "github.com/wyfcoding/mcaad/internal/mcmodel"

// EuropeanCall pays max(S(maturity) - Strike, 0) at the single timeline
// date Maturity.
type EuropeanCall[T mcmodel.Scalar[T]] struct {
	Maturity mcmodel.Time
	Strike   float64
}

func (c *EuropeanCall[T]) Timeline() []mcmodel.Time { return []mcmodel.Time{c.Maturity} }

func (c *EuropeanCall[T]) Payoff(path mcmodel.Path[T]) T {
	spot := path[0].Spot
	gain := spot.SubConst(c.Strike)
	// zero built by multiplying gain's own tape node by the constant 0,
	// rather than a bare literal, so the discarded OTM branch still
	// carries a valid (zero-weight) node on the same tape as gain.
	zero := gain.MulConst(0)
	return maxT(gain, zero)
}

func (c *EuropeanCall[T]) Clone() mcmodel.Product[T] {
	return &EuropeanCall[T]{Maturity: c.Maturity, Strike: c.Strike}
}

// maxT returns the larger of a and b by value, the same comparison
// contract number.Max and mcmodel.MaxReal both honor: the branch itself
// is never recorded on tape, only the chosen operand's own node.
func maxT[T mcmodel.Scalar[T]](a, b T) T {
	if a.Gt(b) {
		return a
	}
	return b
}
