package symbolic

import (
	"sort"
	"strings"

	"github.com/katalvlaran/gal/rational"
)

// Multivector is a canonical symbolic sum of terms partitioned by
// grade.  Construct with NewMultivector (which canonicalizes) or the
// operations in this package; the zero value is the zero multivector.
type Multivector struct {
	terms  []Term
	grades []int // grades[g] = number of terms of grade g
}

// NewMultivector canonicalizes the given terms into a multivector:
//
//	(a) terms are grouped by blade;
//	(b) within a blade, monomials with identical indeterminate sets
//	    are merged by exact coefficient addition;
//	(c) dead (zero-coefficient) monomials are dropped, and blades left
//	    with no live monomials are removed entirely;
//	(d) surviving terms are ordered by (grade, blade) and per-grade
//	    size counters are recorded.
//
// The result is structurally deterministic: symbolically equal inputs
// produce identical multivectors.
func NewMultivector(terms ...Term) Multivector {
	byBlade := make(map[uint32][]Mon)
	for _, t := range terms {
		for _, m := range t.Mons {
			byBlade[t.Blade] = appendMerged(byBlade[t.Blade], m)
		}
	}

	out := make([]Term, 0, len(byBlade))
	for blade, mons := range byBlade {
		live := mons[:0]
		for _, m := range mons {
			if !m.IsDead() {
				live = append(live, m)
			}
		}
		if len(live) == 0 {
			continue
		}
		sort.Slice(live, func(i, j int) bool { return live[i].less(live[j]) })
		out = append(out, Term{Blade: blade, Mons: live})
	}

	sort.Slice(out, func(i, j int) bool {
		gi, gj := out[i].Grade(), out[j].Grade()
		if gi != gj {
			return gi < gj
		}
		return out[i].Blade < out[j].Blade
	})

	var grades []int
	for _, t := range out {
		g := t.Grade()
		for len(grades) <= g {
			grades = append(grades, 0)
		}
		grades[g]++
	}
	return Multivector{terms: out, grades: grades}
}

// appendMerged adds m to mons, summing it into an existing monomial
// with the same indeterminate set when one is present.
func appendMerged(mons []Mon, m Mon) []Mon {
	for i := range mons {
		if mons[i].sameInds(m) {
			mons[i] = Mon{Coeff: mons[i].Coeff.Add(m.Coeff), Inds: mons[i].Inds}
			return mons
		}
	}
	return append(mons, m)
}

// Scalar returns the multivector holding the constant c at the scalar
// blade.
func Scalar(c rational.Rat) Multivector {
	return NewMultivector(NewTerm(0, MonConst(c)))
}

// IsZero reports whether the multivector holds no terms.
func (v Multivector) IsZero() bool { return len(v.terms) == 0 }

// TermCount returns the number of (blade-distinct) terms.
func (v Multivector) TermCount() int { return len(v.terms) }

// MonCount returns the total number of live monomials.
func (v Multivector) MonCount() int {
	n := 0
	for _, t := range v.terms {
		n += len(t.Mons)
	}
	return n
}

// GradeSize returns the number of terms of the given grade.
func (v Multivector) GradeSize(grade int) int {
	if grade < 0 || grade >= len(v.grades) {
		return 0
	}
	return v.grades[grade]
}

// MaxGrade returns the highest grade carrying a term, or -1 for the
// zero multivector.
func (v Multivector) MaxGrade() int { return len(v.grades) - 1 }

// Terms returns a deep copy of the terms in canonical order.
func (v Multivector) Terms() []Term {
	out := make([]Term, len(v.terms))
	for i, t := range v.terms {
		mons := make([]Mon, len(t.Mons))
		for j, m := range t.Mons {
			inds := make([]Ind, len(m.Inds))
			copy(inds, m.Inds)
			mons[j] = Mon{Coeff: m.Coeff, Inds: inds}
		}
		out[i] = Term{Blade: t.Blade, Mons: mons}
	}
	return out
}

// Blades returns the blade masks in canonical order.
func (v Multivector) Blades() []uint32 {
	out := make([]uint32, len(v.terms))
	for i, t := range v.terms {
		out[i] = t.Blade
	}
	return out
}

// Select returns the term at the given blade, if present.
func (v Multivector) Select(blade uint32) (Term, bool) {
	for _, t := range v.terms {
		if t.Blade == blade {
			return t, true
		}
	}
	return Term{}, false
}

// Equal reports structural equality of two canonical multivectors:
// same blade set, same monomial grouping, same exact coefficients.
func (v Multivector) Equal(o Multivector) bool {
	if len(v.terms) != len(o.terms) {
		return false
	}
	for i := range v.terms {
		a, b := v.terms[i], o.terms[i]
		if a.Blade != b.Blade || len(a.Mons) != len(b.Mons) {
			return false
		}
		for j := range a.Mons {
			if !a.Mons[j].Coeff.Equal(b.Mons[j].Coeff) || !a.Mons[j].sameInds(b.Mons[j]) {
				return false
			}
		}
	}
	return true
}

// String renders the multivector in canonical order, "0" when empty.
func (v Multivector) String() string {
	if v.IsZero() {
		return "0"
	}
	parts := make([]string, len(v.terms))
	for i, t := range v.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
