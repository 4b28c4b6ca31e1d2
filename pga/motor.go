package pga

import (
	"math"

	"github.com/katalvlaran/gal/engine"
	"github.com/katalvlaran/gal/rational"
	"github.com/katalvlaran/gal/symbolic"
)

// Rotor generates a pure rotation by theta around the origin line with
// direction (x, y, z).  The half-angle cosine and sine are cached as
// two of the rotor's five numeric slots, so they enter the symbolic
// layer as plain indeterminates.
type Rotor struct {
	CosTheta, SinTheta float64 // cos and sin of theta/2
	X, Y, Z            float64
}

// NewRotor returns the rotor for a rotation by theta around the axis
// direction (x, y, z).  The axis is not normalized here; call
// Normalize when the direction is not unit length.
func NewRotor(theta, x, y, z float64) Rotor {
	return Rotor{
		CosTheta: math.Cos(0.5 * theta),
		SinTheta: math.Sin(0.5 * theta),
		X:        x,
		Y:        y,
		Z:        z,
	}
}

// Normalize scales the axis direction to unit length.  Normalizing a
// zero-length direction produces NaN; this is not checked.
func (r *Rotor) Normalize() {
	l2Inv := 1 / math.Sqrt(r.X*r.X+r.Y*r.Y+r.Z*r.Z)
	r.X *= l2Inv
	r.Y *= l2Inv
	r.Z *= l2Inv
}

// IE returns the rotor's indeterminate expression
// cos(t/2) + sin(t/2)(z e12 - y e13 + x e23), with ids id..id+4 bound
// to cos, sin, x, y, z.
func (r Rotor) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	minusOne := rational.FromInt(-1)
	cos := symbolic.Ind{ID: id, Power: 1}
	sin := symbolic.Ind{ID: id + 1, Power: 1}
	x := symbolic.Ind{ID: id + 2, Power: 1}
	y := symbolic.Ind{ID: id + 3, Power: 1}
	z := symbolic.Ind{ID: id + 4, Power: 1}
	return symbolic.NewMultivector(
		symbolic.NewTerm(E, symbolic.NewMon(one, cos)),
		symbolic.NewTerm(E12, symbolic.NewMon(one, sin, z)),
		symbolic.NewTerm(E13, symbolic.NewMon(minusOne, sin, y)),
		symbolic.NewTerm(E23, symbolic.NewMon(one, sin, x)),
	)
}

// Size returns 5.
func (r Rotor) Size() int { return 5 }

// IndCount returns 5.
func (r Rotor) IndCount() int { return 5 }

// Data returns [cos, sin, x, y, z].
func (r Rotor) Data() []float64 {
	return []float64{r.CosTheta, r.SinTheta, r.X, r.Y, r.Z}
}

// Translator generates a pure translation by distance d along the
// direction (x, y, z): 1 - d/2 (x e01 + y e02 + z e03).
type Translator struct {
	D, X, Y, Z float64
}

// NewTranslator returns the translator for distance d along (x, y, z).
// The direction is not normalized here; call Normalize when it is not
// unit length.
func NewTranslator(d, x, y, z float64) Translator {
	return Translator{D: d, X: x, Y: y, Z: z}
}

// Normalize scales the direction to unit length.  Normalizing a
// zero-length direction produces NaN; this is not checked.
func (t *Translator) Normalize() {
	l2Inv := 1 / math.Sqrt(t.X*t.X+t.Y*t.Y+t.Z*t.Z)
	t.X *= l2Inv
	t.Y *= l2Inv
	t.Z *= l2Inv
}

// IE returns the translator's indeterminate expression
// 1 - d/2 (x e01 + y e02 + z e03), with ids id..id+3 bound to
// d, x, y, z.
func (t Translator) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	minusHalf, err := rational.New(-1, 2)
	if err != nil {
		panic("pga: constructing -1/2: " + err.Error())
	}
	d := symbolic.Ind{ID: id, Power: 1}
	x := symbolic.Ind{ID: id + 1, Power: 1}
	y := symbolic.Ind{ID: id + 2, Power: 1}
	z := symbolic.Ind{ID: id + 3, Power: 1}
	return symbolic.NewMultivector(
		symbolic.NewTerm(E, symbolic.MonConst(one)),
		symbolic.NewTerm(E01, symbolic.NewMon(minusHalf, d, x)),
		symbolic.NewTerm(E02, symbolic.NewMon(minusHalf, d, y)),
		symbolic.NewTerm(E03, symbolic.NewMon(minusHalf, d, z)),
	)
}

// Size returns 4.
func (t Translator) Size() int { return 4 }

// IndCount returns 4.
func (t Translator) IndCount() int { return 4 }

// Data returns [d, x, y, z].
func (t Translator) Data() []float64 {
	return []float64{t.D, t.X, t.Y, t.Z}
}

// Motor occupies the even subalgebra
// {1, e01, e02, e12, e03, e13, e23, e0123} and represents a rigid
// screw motion.  Slots are stored in that blade order.
type Motor struct {
	data [8]float64
}

// NewMotor builds a motor from its eight slot values in blade order
// 1, e01, e02, e12, e03, e13, e23, e0123.
func NewMotor(values [8]float64) Motor {
	return Motor{data: values}
}

// MotorFromEntity reads a computed entity's even-subalgebra slots into
// a motor.
func MotorFromEntity(e engine.Entity) Motor {
	var m Motor
	for i, b := range motorBlades {
		m.data[i] = e.Select(b)
	}
	return m
}

// IE returns the motor's indeterminate expression: one unit
// indeterminate per even-subalgebra blade, ids id..id+7 in slot order.
func (m Motor) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	terms := make([]symbolic.Term, len(motorBlades))
	for i, b := range motorBlades {
		terms[i] = symbolic.NewTerm(b, symbolic.MonVar(one, id+uint32(i)))
	}
	return symbolic.NewMultivector(terms...)
}

// Size returns 8.
func (m Motor) Size() int { return 8 }

// IndCount returns 8.
func (m Motor) IndCount() int { return 8 }

// Data returns the eight slot values in blade order.
func (m Motor) Data() []float64 {
	return append([]float64(nil), m.data[:]...)
}

// At returns slot i.
func (m Motor) At(i int) float64 { return m.data[i] }

// Select returns the value at the given even-subalgebra blade, or 0
// for blades a motor does not carry.
func (m Motor) Select(blade uint32) float64 {
	for i, b := range motorBlades {
		if b == blade {
			return m.data[i]
		}
	}
	return 0
}

// Compose multiplies a rotor and a translator into a motor (the screw
// motion applying t then r).
func Compose(r Rotor, t Translator) (Motor, error) {
	ent, err := engine.Compute(std, func(args []*engine.Expr) *engine.Expr {
		return engine.Mul(args[0], args[1])
	}, r, t)
	if err != nil {
		return Motor{}, err
	}
	return MotorFromEntity(ent), nil
}

// Apply moves a point by the motor's sandwich action m p ~m.
func Apply(m Motor, p Point) (Point, error) {
	ent, err := engine.Compute(std, func(args []*engine.Expr) *engine.Expr {
		return engine.Sandwich(args[0], args[1])
	}, m, p)
	if err != nil {
		return Point{}, err
	}
	return PointFromEntity(ent), nil
}
