package mcmodel

import (
	"math"

	"github.com/wyfcoding/mcaad/internal/tape"
)

// Real is the plain scalar used by the non-AAD simulators. It carries no
// tape bookkeeping — every operation is a direct float64 computation —
// but implements the exact same Scalar surface as number.Number, so a
// Model/Product written against Scalar[T] runs unchanged under either.
type Real float64

func (r Real) Value() float64 { return float64(r) }

func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
func (r Real) Mul(o Real) Real { return r * o }
func (r Real) Div(o Real) Real { return r / o }
func (r Real) Neg() Real       { return -r }

func (r Real) AddConst(c float64) Real { return r + Real(c) }
func (r Real) SubConst(c float64) Real { return r - Real(c) }
func (r Real) ConstSub(c float64) Real { return Real(c) - r }
func (r Real) MulConst(c float64) Real { return r * Real(c) }
func (r Real) DivConst(c float64) Real { return r / Real(c) }

func (r Real) Exp() Real  { return Real(math.Exp(float64(r))) }
func (r Real) Log() Real  { return Real(math.Log(float64(r))) }
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }
func (r Real) Pow(p float64) Real {
	return Real(math.Pow(float64(r), p))
}

const invSqrt2Pi = 0.3989422804014327

func (r Real) NormalDens() Real {
	return Real(invSqrt2Pi * math.Exp(-0.5*float64(r)*float64(r)))
}

func (r Real) NormalCdf() Real {
	return Real(0.5 * (1 + math.Erf(float64(r)/math.Sqrt2)))
}

// OnTape ignores t and returns Real(value): the plain scalar has no
// tape to rebind onto.
func (r Real) OnTape(t *tape.Tape, value float64) Real { return Real(value) }

func (r Real) Lt(o Real) bool { return r < o }
func (r Real) Gt(o Real) bool { return r > o }
func (r Real) Eq(o Real) bool { return r == o }

// MaxReal returns the larger of a and b, mirroring number.Max for the
// plain-scalar side.
func MaxReal(a, b Real) Real {
	if a >= b {
		return a
	}
	return b
}
