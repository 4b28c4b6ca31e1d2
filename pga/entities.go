package pga

import (
	"math"

	"github.com/katalvlaran/gal/engine"
	"github.com/katalvlaran/gal/rational"
	"github.com/katalvlaran/gal/symbolic"
)

// Scalar is a single-slot numeric source at the scalar blade.
type Scalar float64

// IE returns the scalar's indeterminate expression: one unit
// indeterminate at the scalar blade.
func (s Scalar) IE(id uint32) symbolic.Multivector {
	return symbolic.NewMultivector(
		symbolic.NewTerm(E, symbolic.MonVar(rational.FromInt(1), id)),
	)
}

// Size returns 1.
func (s Scalar) Size() int { return 1 }

// IndCount returns 1.
func (s Scalar) IndCount() int { return 1 }

// Data returns the scalar as a one-element array.
func (s Scalar) Data() []float64 { return []float64{float64(s)} }

// Point is a euclidean point, represented dually as the intersection
// of three planes: x e023 is weighted negatively, the e123 slot is the
// unit weight.
type Point struct {
	X, Y, Z float64
}

// NewPoint returns the point at (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// IE returns the point's indeterminate expression
// -z e012 + y e013 - x e023 + e123, with ids id, id+1, id+2 bound to
// x, y, z.
func (p Point) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	minusOne := rational.FromInt(-1)
	return symbolic.NewMultivector(
		symbolic.NewTerm(E012, symbolic.MonVar(minusOne, id+2)),
		symbolic.NewTerm(E013, symbolic.MonVar(one, id+1)),
		symbolic.NewTerm(E023, symbolic.MonVar(minusOne, id)),
		symbolic.NewTerm(E123, symbolic.MonConst(one)),
	)
}

// Size returns 3.
func (p Point) Size() int { return 3 }

// IndCount returns 3.
func (p Point) IndCount() int { return 3 }

// Data returns [x, y, z].
func (p Point) Data() []float64 { return []float64{p.X, p.Y, p.Z} }

// PointFromEntity reads a computed entity back into a point,
// dividing by the e123 weight.  A zero weight produces Inf/NaN
// coordinates per IEEE semantics; this is not checked.
func PointFromEntity(e engine.Entity) Point {
	in := e.SelectAll(E012, E013, E023, E123)
	wInv := 1 / in[3]
	return Point{
		X: -in[2] * wInv,
		Y: in[1] * wInv,
		Z: -in[0] * wInv,
	}
}

// Vector is a direction (a point without weight), sharing the point's
// dual trivector layout minus the e123 slot.
type Vector struct {
	X, Y, Z float64
}

// NewVector returns the direction (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// IE returns -z e012 + y e013 - x e023 with ids id, id+1, id+2 bound
// to x, y, z.
func (v Vector) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	minusOne := rational.FromInt(-1)
	return symbolic.NewMultivector(
		symbolic.NewTerm(E012, symbolic.MonVar(minusOne, id+2)),
		symbolic.NewTerm(E013, symbolic.MonVar(one, id+1)),
		symbolic.NewTerm(E023, symbolic.MonVar(minusOne, id)),
	)
}

// Size returns 3.
func (v Vector) Size() int { return 3 }

// IndCount returns 3.
func (v Vector) IndCount() int { return 3 }

// Data returns [x, y, z].
func (v Vector) Data() []float64 { return []float64{v.X, v.Y, v.Z} }

// VectorFromEntity reads a computed entity back into a direction (no
// weight division).
func VectorFromEntity(e engine.Entity) Vector {
	in := e.SelectAll(E012, E013, E023)
	return Vector{X: -in[2], Y: in[1], Z: -in[0]}
}

// Plane is the locus d + x e1 + y e2 + z e3; planes are the
// grade-1 elements of the dual representation.
type Plane struct {
	D, X, Y, Z float64
}

// NewPlane returns the plane with normal (x, y, z) and offset d.
func NewPlane(d, x, y, z float64) Plane {
	return Plane{D: d, X: x, Y: y, Z: z}
}

// IE returns d e0 + x e1 + y e2 + z e3 with ids id..id+3 bound in
// field order.
func (p Plane) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	return symbolic.NewMultivector(
		symbolic.NewTerm(E0, symbolic.MonVar(one, id)),
		symbolic.NewTerm(E1, symbolic.MonVar(one, id+1)),
		symbolic.NewTerm(E2, symbolic.MonVar(one, id+2)),
		symbolic.NewTerm(E3, symbolic.MonVar(one, id+3)),
	)
}

// Size returns 4.
func (p Plane) Size() int { return 4 }

// IndCount returns 4.
func (p Plane) IndCount() int { return 4 }

// Data returns [d, x, y, z].
func (p Plane) Data() []float64 { return []float64{p.D, p.X, p.Y, p.Z} }

// PlaneFromEntity reads a computed entity back into a plane.
func PlaneFromEntity(e engine.Entity) Plane {
	in := e.SelectAll(E0, E1, E2, E3)
	return Plane{D: in[0], X: in[1], Y: in[2], Z: in[3]}
}

// Line is a line in Plücker coordinates: direction (dx, dy, dz) on
// the origin lines e23, e13, e12 and moment (mx, my, mz) on the ideal
// lines e01, e02, e03.
type Line struct {
	DX, DY, DZ float64
	MX, MY, MZ float64
}

// NewLine returns the line with direction (dx, dy, dz) and moment
// (mx, my, mz).
func NewLine(dx, dy, dz, mx, my, mz float64) Line {
	return Line{DX: dx, DY: dy, DZ: dz, MX: mx, MY: my, MZ: mz}
}

// Normalize scales the line so its direction has unit length; the
// moments scale by the same factor, so the same line is represented.
// Normalizing an ideal line (zero direction) produces NaN; this is
// not checked.
func (l *Line) Normalize() {
	inv := 1 / math.Sqrt(l.DX*l.DX+l.DY*l.DY+l.DZ*l.DZ)
	l.DX *= inv
	l.DY *= inv
	l.DZ *= inv
	l.MX *= inv
	l.MY *= inv
	l.MZ *= inv
}

// IE returns the line's indeterminate expression
// mx e01 + my e02 + dz e12 + mz e03 + dy e13 + dx e23, with ids
// id..id+5 bound to dx, dy, dz, mx, my, mz in field order.
func (l Line) IE(id uint32) symbolic.Multivector {
	one := rational.FromInt(1)
	return symbolic.NewMultivector(
		symbolic.NewTerm(E01, symbolic.MonVar(one, id+3)),
		symbolic.NewTerm(E02, symbolic.MonVar(one, id+4)),
		symbolic.NewTerm(E12, symbolic.MonVar(one, id+2)),
		symbolic.NewTerm(E03, symbolic.MonVar(one, id+5)),
		symbolic.NewTerm(E13, symbolic.MonVar(one, id+1)),
		symbolic.NewTerm(E23, symbolic.MonVar(one, id)),
	)
}

// Size returns 6.
func (l Line) Size() int { return 6 }

// IndCount returns 6.
func (l Line) IndCount() int { return 6 }

// Data returns [dx, dy, dz, mx, my, mz].
func (l Line) Data() []float64 {
	return []float64{l.DX, l.DY, l.DZ, l.MX, l.MY, l.MZ}
}

// LineFromEntity reads a computed entity's bivector slots back into a
// line.
func LineFromEntity(e engine.Entity) Line {
	return Line{
		MX: e.Select(E01),
		MY: e.Select(E02),
		DZ: e.Select(E12),
		MZ: e.Select(E03),
		DY: e.Select(E13),
		DX: e.Select(E23),
	}
}
