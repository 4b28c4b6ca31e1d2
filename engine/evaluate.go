package engine

import (
	"fmt"

	"github.com/katalvlaran/gal/algebra"
	"github.com/katalvlaran/gal/rational"
	"github.com/katalvlaran/gal/symbolic"
)

// Evaluate walks the expression tree and produces one canonical
// symbolic multivector under alg's blade rules.
//
// Description:
//
//	Leaves are admitted after validating every blade against the
//	algebra (the structural algebra-mismatch check, rejected before
//	any numeric evaluation).  Interior nodes apply the corresponding
//	symbolic operation; n-ary sums and products fold left to right.
//	Every step re-canonicalizes, so the result's structure depends
//	only on the expression's mathematical content.
//
// Complexity: bounded by the algebra's blade count per operation —
// each simplification pass is a terminating combinatorial procedure
// over term lists of at most BladeCount() blades.
//
// Errors: ErrNilExpr, ErrNegativePower, ErrUnknownOp, and
// algebra.ErrInvalidBlade (wrapped) from leaf admission or operand
// validation.
func Evaluate(alg *algebra.Algebra, e *Expr) (symbolic.Multivector, error) {
	if e == nil {
		return symbolic.Multivector{}, ErrNilExpr
	}
	switch e.op {
	case OpLeaf:
		for _, blade := range e.leaf.Blades() {
			if err := alg.CheckBlade(blade); err != nil {
				return symbolic.Multivector{}, fmt.Errorf("engine: leaf blade %#b: %w", blade, err)
			}
		}
		return e.leaf, nil

	case OpSum, OpDiff:
		acc, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		for _, kid := range e.kids[1:] {
			v, err := Evaluate(alg, kid)
			if err != nil {
				return symbolic.Multivector{}, err
			}
			if e.op == OpSum {
				acc = symbolic.Add(acc, v)
			} else {
				acc = symbolic.Sub(acc, v)
			}
		}
		return acc, nil

	case OpMul, OpWedge, OpDot:
		kind := symbolic.Geometric
		switch e.op {
		case OpWedge:
			kind = symbolic.Outer
		case OpDot:
			kind = symbolic.Inner
		}
		acc, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		for _, kid := range e.kids[1:] {
			v, err := Evaluate(alg, kid)
			if err != nil {
				return symbolic.Multivector{}, err
			}
			if acc, err = symbolic.Product(alg, kind, acc, v); err != nil {
				return symbolic.Multivector{}, err
			}
		}
		return acc, nil

	case OpDual:
		v, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		return symbolic.Dual(alg, v)

	case OpReverse:
		v, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		return symbolic.Reverse(alg, v)

	case OpNegate:
		v, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		return symbolic.Negate(v), nil

	case OpScale:
		v, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		return symbolic.Scale(v, e.scale), nil

	case OpPow:
		if e.pow < 0 {
			return symbolic.Multivector{}, ErrNegativePower
		}
		v, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		acc := symbolic.Scalar(rational.FromInt(1))
		for i := 0; i < e.pow; i++ {
			if acc, err = symbolic.Product(alg, symbolic.Geometric, acc, v); err != nil {
				return symbolic.Multivector{}, err
			}
		}
		return acc, nil

	case OpSandwich:
		a, err := Evaluate(alg, e.kids[0])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		b, err := Evaluate(alg, e.kids[1])
		if err != nil {
			return symbolic.Multivector{}, err
		}
		rev, err := symbolic.Reverse(alg, a)
		if err != nil {
			return symbolic.Multivector{}, err
		}
		ab, err := symbolic.Product(alg, symbolic.Geometric, a, b)
		if err != nil {
			return symbolic.Multivector{}, err
		}
		return symbolic.Product(alg, symbolic.Geometric, ab, rev)

	default:
		return symbolic.Multivector{}, ErrUnknownOp
	}
}
