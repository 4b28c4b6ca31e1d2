package engine

import (
	"github.com/katalvlaran/gal/symbolic"
)

// Factor references one numeric input raised to a multiplicity.
type Factor struct {
	ID    uint32
	Power int
}

// PlanTerm is one addend of an output slot: a constant coefficient
// times a product of input factors.
type PlanTerm struct {
	Coeff   float64
	Factors []Factor
}

// Slot is one output coefficient of the plan: the blade it belongs to,
// its grade, and the terms summed to produce it.
type Slot struct {
	Blade uint32
	Grade int
	Terms []PlanTerm
}

// Plan is the flat numeric program produced by lowering a canonical
// multivector: one slot per surviving blade, in grade order.  A plan
// is immutable after Lower; treat the slices returned by its accessors
// as read-only.
type Plan struct {
	slots []Slot
	maxID int // highest input id referenced, -1 when constant
}

// Lower flattens a canonical multivector into a Plan.  The walk is a
// single O(monomial count) pass; slot order follows the multivector's
// canonical (grade, blade) order, so lowering the same expression
// twice yields structurally identical plans.
func Lower(v symbolic.Multivector) *Plan {
	p := &Plan{maxID: -1}
	for _, t := range v.Terms() {
		slot := Slot{Blade: t.Blade, Grade: t.Grade()}
		for _, m := range t.Mons {
			pt := PlanTerm{Coeff: m.Coeff.Float64()}
			for _, in := range m.Inds {
				pt.Factors = append(pt.Factors, Factor{ID: in.ID, Power: in.Power})
				if int(in.ID) > p.maxID {
					p.maxID = int(in.ID)
				}
			}
			slot.Terms = append(slot.Terms, pt)
		}
		p.slots = append(p.slots, slot)
	}
	return p
}

// Size returns the number of output slots.
func (p *Plan) Size() int { return len(p.slots) }

// Slots returns the output slots in grade order.
func (p *Plan) Slots() []Slot { return p.slots }

// Blades returns the output blade per slot, in slot order.
func (p *Plan) Blades() []uint32 {
	out := make([]uint32, len(p.slots))
	for i, s := range p.slots {
		out[i] = s.Blade
	}
	return out
}

// Run executes the plan against the caller's live input array and
// returns one output coefficient per slot.
//
// NaN or Inf inputs propagate through untouched per IEEE semantics —
// the plan never checks or sanitizes values.  The only failure is
// structural: ErrShortInput when the array is shorter than the ids the
// plan references.
func (p *Plan) Run(inputs []float64) ([]float64, error) {
	if p.maxID >= len(inputs) {
		return nil, ErrShortInput
	}
	out := make([]float64, len(p.slots))
	for i, slot := range p.slots {
		acc := 0.0
		for _, t := range slot.Terms {
			prod := t.Coeff
			for _, f := range t.Factors {
				x := inputs[f.ID]
				for k := 0; k < f.Power; k++ {
					prod *= x
				}
			}
			acc += prod
		}
		out[i] = acc
	}
	return out, nil
}
