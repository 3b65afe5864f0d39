// Package mcmodel defines the Product, Model and Scenario contracts the
// simulator drives. The package is generic over the scalar type so the
// exact same Product/Model code runs plain (Scalar = Real) or AAD-aware
// (Scalar = number.Number) depending only on which simulator entry point
// the caller invokes.
package mcmodel

import "github.com/wyfcoding/mcaad/internal/tape"

// Time is an instant on a product's timeline.
type Time = float64

// Scenario is the model's state at one event date. A single-asset
// diffusion needs only a spot price; richer models may be driven by
// richer host types that still satisfy Scalar.
type Scenario[T any] struct {
	Spot T
}

// Path is the scenario sequence along a product's timeline, one entry
// per Time in Product.Timeline().
type Path[T any] []Scenario[T]

// Scalar is the arithmetic surface every elementary operation on a path
// or payoff needs. Real (plain Monte Carlo) and number.Number (AAD) both
// satisfy it, which is what lets Product[T]/Model[T] be written once and
// instantiated for either mode.
type Scalar[T any] interface {
	Value() float64

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	AddConst(float64) T
	SubConst(float64) T
	ConstSub(float64) T
	MulConst(float64) T
	DivConst(float64) T

	Exp() T
	Log() T
	Sqrt() T
	Pow(float64) T
	NormalDens() T
	NormalCdf() T

	Lt(T) bool
	Gt(T) bool
	Eq(T) bool

	// OnTape returns a fresh leaf of the receiver's own concrete type,
	// ignoring the receiver's current value: for number.Number it
	// registers value as a new leaf node on t, so a Model's PutOnTape
	// can rebind its own parameter fields onto a new tape generically,
	// without a type switch on T. For Real it is the identity and
	// ignores t entirely.
	OnTape(t *tape.Tape, value float64) T
}

// Product computes a payoff from a path on its own fixed timeline. The
// simulator treats it as read-only: Payoff and Timeline must be pure
// functions of (path) and (receiver state) respectively.
type Product[T Scalar[T]] interface {
	// Timeline returns the product's event dates: non-empty, strictly
	// increasing.
	Timeline() []Time

	// Payoff computes the contract's payoff given a path whose length
	// equals len(Timeline()).
	Payoff(path Path[T]) T

	// Clone returns a deep, independent copy.
	Clone() Product[T]
}

// Model generates scenario paths from Gaussian shocks and exposes its
// own parameters for sensitivity reporting.
type Model[T Scalar[T]] interface {
	// Init precomputes per-step coefficients aligned to productTimeline.
	// In AAD mode the simulator calls this after PutOnTape, so any
	// arithmetic Init performs on the model's parameters is itself
	// recorded and contributes to parameter sensitivities.
	Init(productTimeline []Time)

	// SimDim is the number of independent standard normals GeneratePath
	// consumes per path.
	SimDim() int

	// GeneratePath fills path (length len(productTimeline)) from
	// gaussVec (length SimDim()). gaussVec is always a plain real vector
	// regardless of T: randomness itself is never differentiated, only
	// the deterministic map from shocks to scenarios is.
	GeneratePath(gaussVec []float64, path Path[T])

	// Parameters returns the model's sensitivity parameters by value.
	Parameters() []T

	// PutOnTape registers Parameters() as fresh leaf nodes on t with
	// zeroed adjoints. A no-op when T is Real.
	PutOnTape(t *tape.Tape)

	// Clone returns a deep, independent copy.
	Clone() Model[T]
}
