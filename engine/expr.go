package engine

import (
	"github.com/katalvlaran/gal/rational"
	"github.com/katalvlaran/gal/symbolic"
)

// Op identifies an expression-tree node kind.
type Op int

const (
	// OpLeaf wraps a symbolic multivector.
	OpLeaf Op = iota
	// OpSum adds its children.
	OpSum
	// OpDiff subtracts the second child from the first.
	OpDiff
	// OpMul is the geometric product of its children, left to right.
	OpMul
	// OpWedge is the outer (grade-raising) product.
	OpWedge
	// OpDot is the inner (grade-lowering) product.
	OpDot
	// OpDual remaps blades to their complements.
	OpDual
	// OpReverse applies the reversion anti-automorphism.
	OpReverse
	// OpNegate flips every sign.
	OpNegate
	// OpScale multiplies by an exact rational constant.
	OpScale
	// OpPow raises to a non-negative integer power.
	OpPow
	// OpSandwich conjugates: a b ~a.
	OpSandwich
)

// Expr is a lazy, immutable expression-tree node.  Build with the
// constructors below; evaluate with Evaluate or Compute.
type Expr struct {
	op    Op
	kids  []*Expr
	leaf  symbolic.Multivector
	scale rational.Rat
	pow   int
}

// Op returns the node kind.
func (e *Expr) Op() Op { return e.op }

// Leaf wraps a symbolic multivector as an expression.
func Leaf(v symbolic.Multivector) *Expr {
	return &Expr{op: OpLeaf, leaf: v}
}

// Scalar is shorthand for a constant scalar leaf.
func Scalar(c rational.Rat) *Expr {
	return Leaf(symbolic.Scalar(c))
}

// Sum returns a + b + more...
func Sum(a, b *Expr, more ...*Expr) *Expr {
	return &Expr{op: OpSum, kids: append([]*Expr{a, b}, more...)}
}

// Diff returns a - b.
func Diff(a, b *Expr) *Expr {
	return &Expr{op: OpDiff, kids: []*Expr{a, b}}
}

// Mul returns the geometric product a * b * more..., left to right.
func Mul(a, b *Expr, more ...*Expr) *Expr {
	return &Expr{op: OpMul, kids: append([]*Expr{a, b}, more...)}
}

// Wedge returns the outer product a ^ b.
func Wedge(a, b *Expr) *Expr {
	return &Expr{op: OpWedge, kids: []*Expr{a, b}}
}

// Dot returns the inner product a · b.
func Dot(a, b *Expr) *Expr {
	return &Expr{op: OpDot, kids: []*Expr{a, b}}
}

// Dual returns the complement remap of a.
func Dual(a *Expr) *Expr {
	return &Expr{op: OpDual, kids: []*Expr{a}}
}

// Reverse returns ~a.
func Reverse(a *Expr) *Expr {
	return &Expr{op: OpReverse, kids: []*Expr{a}}
}

// Negate returns -a.
func Negate(a *Expr) *Expr {
	return &Expr{op: OpNegate, kids: []*Expr{a}}
}

// Scale returns a scaled by the exact rational c.
func Scale(a *Expr, c rational.Rat) *Expr {
	return &Expr{op: OpScale, kids: []*Expr{a}, scale: c}
}

// Pow returns a raised to the non-negative integer n.  Evaluation
// rejects negative n with ErrNegativePower.
func Pow(a *Expr, n int) *Expr {
	return &Expr{op: OpPow, kids: []*Expr{a}, pow: n}
}

// Sandwich returns the conjugation a b ~a — how a versor acts on an
// element.
func Sandwich(a, b *Expr) *Expr {
	return &Expr{op: OpSandwich, kids: []*Expr{a, b}}
}
