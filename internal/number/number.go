// Package number implements ActiveNumber, the AAD-aware scalar that
// carries a value and a reference into a Tape node alongside it. Every
// arithmetic operation on an ActiveNumber appends a Node to its tape and
// returns a new ActiveNumber whose adjoint slot lives in that node.
package number

import (
	"math"

	"github.com/wyfcoding/mcaad/internal/tape"
)

// Number is a scalar carrying tape bookkeeping for reverse-mode AD. It
// holds a float64 value; every ActiveNumber is produced from
// and records against a single Tape for its whole life.
type Number struct {
	value float64
	node  *tape.Node
	tape  *tape.Tape
}

// New creates a leaf Number from a real value on t: a model parameter or
// any other constant that needs its own adjoint slot (because it may
// itself be read by a later backward sweep, e.g. via Parameters()).
func New(t *tape.Tape, value float64) Number {
	return Number{value: value, node: t.Leaf(), tape: t}
}

// Value returns the scalar's current value.
func (n Number) Value() float64 { return n.value }

// Adjoint returns the accumulated adjoint of this scalar's tape node.
func (n Number) Adjoint() float64 { return n.node.Adjoint }

// SetAdjoint overwrites this scalar's adjoint. Used to reset a
// parameter's sensitivity to zero when re-registering it on tape.
func (n Number) SetAdjoint(v float64) { n.node.Adjoint = v }

// Node exposes the underlying tape node, needed by Tape.PropagateToMark
// to identify the result being propagated.
func (n Number) Node() *tape.Node { return n.node }

// Tape returns the tape this scalar's node lives on.
func (n Number) Tape() *tape.Tape { return n.tape }

// PropagateToMark is a convenience for Tape.PropagateToMark(n.Node(), reset).
func (n Number) PropagateToMark(reset bool) {
	n.tape.PropagateToMark(n.node, reset)
}

func (n Number) binary(other Number, value float64, wSelf, wOther float64) Number {
	node := n.tape.RecordBinary(n.node, wSelf, other.node, wOther)
	return Number{value: value, node: node, tape: n.tape}
}

func (n Number) unary(value float64, weight float64) Number {
	node := n.tape.RecordUnary(n.node, weight)
	return Number{value: value, node: node, tape: n.tape}
}

// Add returns n + other.
func (n Number) Add(other Number) Number {
	return n.binary(other, n.value+other.value, 1, 1)
}

// Sub returns n - other.
func (n Number) Sub(other Number) Number {
	return n.binary(other, n.value-other.value, 1, -1)
}

// Mul returns n * other.
func (n Number) Mul(other Number) Number {
	return n.binary(other, n.value*other.value, other.value, n.value)
}

// Div returns n / other.
func (n Number) Div(other Number) Number {
	v := n.value / other.value
	return n.binary(other, v, 1/other.value, -v/other.value)
}

// Neg returns -n.
func (n Number) Neg() Number { return n.unary(-n.value, -1) }

// AddConst returns n + c for a plain real c, without putting c on tape.
func (n Number) AddConst(c float64) Number { return n.unary(n.value+c, 1) }

// SubConst returns n - c.
func (n Number) SubConst(c float64) Number { return n.unary(n.value-c, 1) }

// ConstSub returns c - n.
func (n Number) ConstSub(c float64) Number { return n.unary(c-n.value, -1) }

// MulConst returns n * c.
func (n Number) MulConst(c float64) Number { return n.unary(n.value*c, c) }

// DivConst returns n / c.
func (n Number) DivConst(c float64) Number { return n.unary(n.value/c, 1/c) }

// Exp returns exp(n).
func (n Number) Exp() Number {
	v := math.Exp(n.value)
	return n.unary(v, v)
}

// Log returns ln(n). Result is NaN for n <= 0, propagated rather than
// masked, per the core's numeric-degeneracy contract.
func (n Number) Log() Number {
	return n.unary(math.Log(n.value), 1/n.value)
}

// Sqrt returns sqrt(n).
func (n Number) Sqrt() Number {
	v := math.Sqrt(n.value)
	return n.unary(v, 0.5/v)
}

// Pow returns n**p for a constant real exponent p.
func (n Number) Pow(p float64) Number {
	v := math.Pow(n.value, p)
	return n.unary(v, p*math.Pow(n.value, p-1))
}

const invSqrt2Pi = 0.3989422804014327 // 1/sqrt(2*pi)

// NormalDens returns the standard normal probability density at n.
func (n Number) NormalDens() Number {
	v := invSqrt2Pi * math.Exp(-0.5*n.value*n.value)
	return n.unary(v, -n.value*v)
}

// NormalCdf returns the standard normal cumulative distribution at n.
func (n Number) NormalCdf() Number {
	v := 0.5 * (1 + math.Erf(n.value/math.Sqrt2))
	dens := invSqrt2Pi * math.Exp(-0.5*n.value*n.value)
	return n.unary(v, dens)
}

// OnTape returns a fresh leaf Number for value on t, independent of the
// receiver: it exists so generic code holding only a Scalar[T] can
// rebind a model's own parameter fields onto a new tape without a type
// switch on T.
func (n Number) OnTape(t *tape.Tape, value float64) Number { return New(t, value) }

// Lt, Gt, Eq compare values only; branching on an ActiveNumber never
// touches the tape, so payoffs built from comparisons remain piecewise
// smooth without producing spurious derivatives at the kink.
func (n Number) Lt(other Number) bool { return n.value < other.value }
func (n Number) Gt(other Number) bool { return n.value > other.value }
func (n Number) Eq(other Number) bool { return n.value == other.value }

// Max returns the larger of a and b by value; like Lt/Gt, the selection
// itself is not recorded, only the chosen branch's own node is returned.
func Max(a, b Number) Number {
	if a.value >= b.value {
		return a
	}
	return b
}

// PropagateMarkToStart continues t's backward sweep from its mark to its
// start. Provided here as the free-function spelling used by the
// simulator so call sites read like the spec's Number::propagateMarkToStart().
func PropagateMarkToStart(t *tape.Tape) { t.PropagateMarkToStart() }
