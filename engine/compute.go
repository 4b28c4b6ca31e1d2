package engine

import (
	"github.com/katalvlaran/gal/algebra"
	"github.com/katalvlaran/gal/rational"
	"github.com/katalvlaran/gal/symbolic"
)

// Allocator hands out contiguous indeterminate-id ranges.  It is an
// explicit value threaded through entity construction — there is no
// ambient global counter.  The zero value starts at id 0.
type Allocator struct {
	next uint32
}

// Alloc reserves n consecutive ids and returns the first.
func (a *Allocator) Alloc(n int) uint32 {
	base := a.next
	a.next += uint32(n)
	return base
}

// Count returns how many ids have been handed out.
func (a *Allocator) Count() uint32 { return a.next }

// Source is the entity protocol consumed by the engine: anything that
// can describe itself as a symbolic multivector anchored at a
// caller-chosen id range and supply the matching numeric inputs.
//
// IE returns the indeterminate expression rooted at id; it must
// consume exactly IndCount consecutive ids, and Data's first IndCount
// values must correspond positionally to those ids.  Size is the
// numeric slot count of the entity (usually equal to IndCount).
type Source interface {
	IE(id uint32) symbolic.Multivector
	Size() int
	IndCount() int
	Data() []float64
}

// Entity is a generic computed geometric object: an ordered list of
// blades and the numeric coefficient for each.  It is the output of
// Compute and is itself a Source, so computed results feed back into
// further computations.
type Entity struct {
	blades []uint32
	values []float64
}

// NewEntity builds an entity from parallel blade and value lists.
// Fails with ErrEntityShape when the lengths differ.
func NewEntity(blades []uint32, values []float64) (Entity, error) {
	if len(blades) != len(values) {
		return Entity{}, ErrEntityShape
	}
	e := Entity{
		blades: append([]uint32(nil), blades...),
		values: append([]float64(nil), values...),
	}
	return e, nil
}

// Size returns the number of slots.
func (e Entity) Size() int { return len(e.blades) }

// IndCount returns the number of indeterminates IE consumes: one per
// slot.
func (e Entity) IndCount() int { return len(e.blades) }

// Blades returns a copy of the slot blades in order.
func (e Entity) Blades() []uint32 {
	return append([]uint32(nil), e.blades...)
}

// Data returns a copy of the slot values in order.
func (e Entity) Data() []float64 {
	return append([]float64(nil), e.values...)
}

// At returns the value of slot i.
func (e Entity) At(i int) float64 { return e.values[i] }

// Select returns the value stored at the given blade, or 0 when the
// entity carries no slot for it.
func (e Entity) Select(blade uint32) float64 {
	for i, b := range e.blades {
		if b == blade {
			return e.values[i]
		}
	}
	return 0
}

// SelectAll returns the values at the given blades, in order.
func (e Entity) SelectAll(blades ...uint32) []float64 {
	out := make([]float64, len(blades))
	for i, b := range blades {
		out[i] = e.Select(b)
	}
	return out
}

// IE returns the entity's indeterminate expression: one fresh unit
// indeterminate per slot, bound to the slot's blade.
func (e Entity) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	terms := make([]symbolic.Term, len(e.blades))
	for i, b := range e.blades {
		terms[i] = symbolic.NewTerm(b, symbolic.MonVar(one, id+uint32(i)))
	}
	return symbolic.NewMultivector(terms...)
}

// Compute is the generic evaluation driver: it binds each source to a
// fresh contiguous id range, hands the resulting leaf expressions to
// f, evaluates and lowers f's expression, runs the plan against the
// sources' concatenated numeric data and returns the resulting entity.
//
// The expression must be pure — sources are read once, before
// evaluation.  Structural errors surface from Evaluate; numeric NaN/
// Inf propagate silently (see Plan.Run).
func Compute(alg *algebra.Algebra, f func(args []*Expr) *Expr, srcs ...Source) (Entity, error) {
	var alloc Allocator
	args := make([]*Expr, len(srcs))
	var inputs []float64
	for i, s := range srcs {
		base := alloc.Alloc(s.IndCount())
		args[i] = Leaf(s.IE(base))
		inputs = append(inputs, s.Data()[:s.IndCount()]...)
	}

	v, err := Evaluate(alg, f(args))
	if err != nil {
		return Entity{}, err
	}
	plan := Lower(v)
	values, err := plan.Run(inputs)
	if err != nil {
		return Entity{}, err
	}
	return Entity{blades: plan.Blades(), values: values}, nil
}
