package symbolic

import (
	"fmt"

	"github.com/katalvlaran/gal/algebra"
	"github.com/katalvlaran/gal/rational"
)

// ProductKind selects which term pairs survive a product.
type ProductKind int

const (
	// Geometric keeps every term pair (the full geometric product).
	Geometric ProductKind = iota

	// Outer keeps only grade-raising pairs: grade(ab) = grade(a)+grade(b).
	// Pairs sharing a basis vector are dropped.
	Outer

	// Inner keeps only grade-lowering pairs: grade(ab) = |grade(a)-grade(b)|.
	Inner
)

// Add returns the canonical sum of two multivectors: the union of
// their blade sets with like monomials merged and cancellations
// applied.
func Add(a, b Multivector) Multivector {
	return NewMultivector(append(a.Terms(), b.Terms()...)...)
}

// Sub returns a - b.
func Sub(a, b Multivector) Multivector {
	return Add(a, Negate(b))
}

// Negate flips the sign of every monomial.  Blade structure is
// unchanged.
func Negate(a Multivector) Multivector {
	return Scale(a, rational.FromInt(-1))
}

// Scale multiplies every monomial's coefficient by c.  Scaling by an
// exact zero yields the zero multivector.
func Scale(a Multivector, c rational.Rat) Multivector {
	terms := a.Terms()
	for i := range terms {
		for j := range terms[i].Mons {
			terms[i].Mons[j] = terms[i].Mons[j].scale(c)
		}
	}
	return NewMultivector(terms...)
}

// Product returns the product of a and b under the blade rules of alg.
// For every pair of terms the algebra supplies the resulting blade and
// a sign; a zero sign (degenerate metric) annihilates the pair.  The
// kind filter then decides whether the pair contributes:
// Geometric keeps all pairs, Outer keeps grade-raising pairs only,
// Inner keeps grade-lowering pairs only.  The accumulated terms are
// canonicalized before returning.
//
// Product fails with algebra.ErrInvalidBlade (wrapped) when either
// operand holds a blade outside alg's range — the structural
// algebra-mismatch error, rejected ahead of any numeric work.
func Product(alg *algebra.Algebra, kind ProductKind, a, b Multivector) (Multivector, error) {
	if err := checkBlades(alg, a, b); err != nil {
		return Multivector{}, err
	}

	var raw []Term
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			sign, blade := alg.Product(ta.Blade, tb.Blade)
			if sign == 0 {
				continue
			}
			switch kind {
			case Outer:
				if alg.Grade(blade) != ta.Grade()+tb.Grade() {
					continue
				}
			case Inner:
				if alg.Grade(blade) != absInt(ta.Grade()-tb.Grade()) {
					continue
				}
			}
			factor := rational.FromInt(int64(sign))
			for _, ma := range ta.Mons {
				for _, mb := range tb.Mons {
					raw = append(raw, NewTerm(blade, ma.Mul(mb).scale(factor)))
				}
			}
		}
	}
	return NewMultivector(raw...), nil
}

// Dual remaps every term's blade to its complement with the algebra's
// complement sign.  Linear — no cross terms, O(term count).
func Dual(alg *algebra.Algebra, a Multivector) (Multivector, error) {
	if err := checkBlades(alg, a); err != nil {
		return Multivector{}, err
	}
	terms := a.Terms()
	for i := range terms {
		sign, comp := alg.Dual(terms[i].Blade)
		terms[i].Blade = comp
		factor := rational.FromInt(int64(sign))
		for j := range terms[i].Mons {
			terms[i].Mons[j] = terms[i].Mons[j].scale(factor)
		}
	}
	return NewMultivector(terms...), nil
}

// Reverse applies the reversion anti-automorphism: each term picks up
// the grade-dependent sign (-1)^(g(g-1)/2).
func Reverse(alg *algebra.Algebra, a Multivector) (Multivector, error) {
	if err := checkBlades(alg, a); err != nil {
		return Multivector{}, err
	}
	terms := a.Terms()
	for i := range terms {
		factor := rational.FromInt(int64(alg.ReverseSign(terms[i].Blade)))
		for j := range terms[i].Mons {
			terms[i].Mons[j] = terms[i].Mons[j].scale(factor)
		}
	}
	return NewMultivector(terms...), nil
}

// GradeSelect keeps only the terms of the given grade.
func GradeSelect(a Multivector, grade int) Multivector {
	var keep []Term
	for _, t := range a.Terms() {
		if t.Grade() == grade {
			keep = append(keep, t)
		}
	}
	return NewMultivector(keep...)
}

// checkBlades validates every blade of the given multivectors against
// alg, wrapping algebra.ErrInvalidBlade on the first offender.
func checkBlades(alg *algebra.Algebra, vs ...Multivector) error {
	for _, v := range vs {
		for _, t := range v.terms {
			if err := alg.CheckBlade(t.Blade); err != nil {
				return fmt.Errorf("symbolic: blade %#b: %w", t.Blade, err)
			}
		}
	}
	return nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
