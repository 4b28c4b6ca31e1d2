package symbolic

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/katalvlaran/gal/rational"
)

// Ind references one runtime numeric input by id, raised to Power.
// Ids are allocated by the caller (see engine.Allocator) and are a
// stable handle into the caller-owned input array; the symbolic layer
// stores references only, never values.
type Ind struct {
	ID    uint32
	Power int
}

// Mon is a monomial: an exact rational coefficient times a product of
// indeterminates.  Inds are kept sorted by ID with powers merged; use
// NewMon to construct.  A Mon with a zero coefficient is "dead": it is
// kept distinguishable (IsDead) so downstream passes filter it rather
// than needing a removal protocol.
type Mon struct {
	Coeff rational.Rat
	Inds  []Ind
}

// NewMon builds a monomial in canonical form: indeterminates sorted by
// id, duplicate ids merged by adding powers, non-positive powers
// discarded.
func NewMon(coeff rational.Rat, inds ...Ind) Mon {
	merged := make(map[uint32]int, len(inds))
	for _, in := range inds {
		if in.Power > 0 {
			merged[in.ID] += in.Power
		}
	}
	out := make([]Ind, 0, len(merged))
	for id, p := range merged {
		out = append(out, Ind{ID: id, Power: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return Mon{Coeff: coeff, Inds: out}
}

// MonConst returns the indeterminate-free monomial with the given
// coefficient.
func MonConst(coeff rational.Rat) Mon {
	return Mon{Coeff: coeff}
}

// MonVar returns coeff times the single indeterminate id.
func MonVar(coeff rational.Rat, id uint32) Mon {
	return Mon{Coeff: coeff, Inds: []Ind{{ID: id, Power: 1}}}
}

// Degree returns the total degree (sum of powers) of the monomial.
func (m Mon) Degree() int {
	d := 0
	for _, in := range m.Inds {
		d += in.Power
	}
	return d
}

// IsDead reports whether the coefficient is exactly zero.
func (m Mon) IsDead() bool { return m.Coeff.IsZero() }

// Mul returns the product of two monomials: coefficients multiplied
// exactly, indeterminate lists merged with powers added.
func (m Mon) Mul(o Mon) Mon {
	coeff := m.Coeff.Mul(o.Coeff)
	inds := make([]Ind, 0, len(m.Inds)+len(o.Inds))
	i, j := 0, 0
	for i < len(m.Inds) && j < len(o.Inds) {
		switch {
		case m.Inds[i].ID < o.Inds[j].ID:
			inds = append(inds, m.Inds[i])
			i++
		case m.Inds[i].ID > o.Inds[j].ID:
			inds = append(inds, o.Inds[j])
			j++
		default:
			inds = append(inds, Ind{ID: m.Inds[i].ID, Power: m.Inds[i].Power + o.Inds[j].Power})
			i, j = i+1, j+1
		}
	}
	inds = append(inds, m.Inds[i:]...)
	inds = append(inds, o.Inds[j:]...)
	return Mon{Coeff: coeff, Inds: inds}
}

// scale returns the monomial with its coefficient multiplied by c.
func (m Mon) scale(c rational.Rat) Mon {
	return Mon{Coeff: m.Coeff.Mul(c), Inds: m.Inds}
}

// sameInds reports whether two monomials have identical indeterminate
// sets (ids and powers) — the merge criterion for like terms.
func (m Mon) sameInds(o Mon) bool {
	if len(m.Inds) != len(o.Inds) {
		return false
	}
	for i := range m.Inds {
		if m.Inds[i] != o.Inds[i] {
			return false
		}
	}
	return true
}

// less orders monomials deterministically: by total degree, then
// lexicographically by (id, power), then by coefficient.
func (m Mon) less(o Mon) bool {
	if dm, do := m.Degree(), o.Degree(); dm != do {
		return dm < do
	}
	for i := 0; i < len(m.Inds) && i < len(o.Inds); i++ {
		if m.Inds[i].ID != o.Inds[i].ID {
			return m.Inds[i].ID < o.Inds[i].ID
		}
		if m.Inds[i].Power != o.Inds[i].Power {
			return m.Inds[i].Power < o.Inds[i].Power
		}
	}
	if len(m.Inds) != len(o.Inds) {
		return len(m.Inds) < len(o.Inds)
	}
	return m.Coeff.Cmp(o.Coeff) < 0
}

// String renders the monomial as "c·x0·x1^2".
func (m Mon) String() string {
	var b strings.Builder
	b.WriteString(m.Coeff.String())
	for _, in := range m.Inds {
		if in.Power == 1 {
			fmt.Fprintf(&b, "·x%d", in.ID)
		} else {
			fmt.Fprintf(&b, "·x%d^%d", in.ID, in.Power)
		}
	}
	return b.String()
}

// Term binds a monomial sum to one basis blade.
type Term struct {
	Blade uint32
	Mons  []Mon
}

// NewTerm builds a term over the given blade.
func NewTerm(blade uint32, mons ...Mon) Term {
	return Term{Blade: blade, Mons: mons}
}

// Grade returns the grade of the term's blade.
func (t Term) Grade() int {
	return bits.OnesCount32(t.Blade)
}

// String renders the term as "(mons) eN" with "1" for the scalar blade.
func (t Term) String() string {
	parts := make([]string, len(t.Mons))
	for i, m := range t.Mons {
		parts[i] = m.String()
	}
	return fmt.Sprintf("(%s) %s", strings.Join(parts, " + "), BladeName(t.Blade))
}

// BladeName renders a blade mask as "1" (scalar) or "e" followed by
// the participating basis-vector indices, e.g. 0b0110 -> "e12".
func BladeName(blade uint32) string {
	if blade == 0 {
		return "1"
	}
	var b strings.Builder
	b.WriteByte('e')
	for i := 0; blade != 0; i, blade = i+1, blade>>1 {
		if blade&1 != 0 {
			fmt.Fprintf(&b, "%d", i)
		}
	}
	return b.String()
}
