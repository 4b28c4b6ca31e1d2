package pga

import (
	"math"

	"github.com/katalvlaran/gal/engine"
)

// pair builds the two-slot scalar+pseudoscalar entity s + p I used by
// the exp/log decompositions.  In the degenerate metric I² = 0, so
// these behave as dual numbers under the geometric product.
func pair(s, p float64) engine.Entity {
	e, err := engine.NewEntity([]uint32{E, E0123}, []float64{s, p})
	if err != nil {
		panic("pga: building scalar pair: " + err.Error())
	}
	return e
}

// square evaluates l*l for a line source and returns the resulting
// s + p I entity: a bivector squares to a scalar plus a pseudoscalar
// part in the PGA.
func square(l Line) (engine.Entity, error) {
	return engine.Compute(std, func(args []*engine.Expr) *engine.Expr {
		return engine.Mul(args[0], args[0])
	}, l)
}

// Exp returns the motor e^l for a bivector line l, in closed form.
//
// Description:
//
//	L² = s + p·I for any line L.  Writing norm = sqrt(-L²) =
//	u + v·I (dual-number arithmetic, since I² = 0 here) with
//	u = sqrt(-s) and v = -p/(2u), the normalized line is
//	L̂ = norm⁻¹·L and
//
//	    e^L = cos(u + v·I) + sin(u + v·I)·L̂
//	        = (cos u - v sin u·I) + (sin u + v cos u·I)·L̂.
//
//	The two quantities u and v are the one place the engine must leave
//	the symbolic layer: they are evaluated numerically (via one
//	self-product) so the transcendental calls can run, then fed back
//	into a final symbolic combination.
//
//	When the euclidean part vanishes (u below opts.Epsilon) the line
//	is ideal, L² = 0 exactly, and the series truncates: e^L = 1 + L —
//	a pure translation.
//
// A null direction passed by the caller surfaces as NaN slots in the
// resulting motor; nothing is checked or clamped.
func Exp(l Line, opts *Options) (Motor, error) {
	l2, err := square(l)
	if err != nil {
		return Motor{}, err
	}
	s := -l2.Select(E)
	u := math.Sqrt(s)
	if u < epsilonOf(opts) {
		// Ideal line: exact parabolic form 1 + l.
		return NewMotor([8]float64{1, l.MX, l.MY, l.DZ, l.MZ, l.DY, l.DX, 0}), nil
	}
	v := -l2.Select(E0123) / (2 * u)

	cosPart := pair(math.Cos(u), -v*math.Sin(u))
	sinPart := pair(math.Sin(u), v*math.Cos(u))
	invNorm := pair(1/u, -v/(u*u))

	ent, err := engine.Compute(std, func(args []*engine.Expr) *engine.Expr {
		return engine.Sum(args[0], engine.Mul(args[1], args[2], args[3]))
	}, cosPart, sinPart, invNorm, l)
	if err != nil {
		return Motor{}, err
	}
	return MotorFromEntity(ent), nil
}

// Log returns the bivector generator of a normalized motor, the
// inverse of Exp.
//
// Description:
//
//	A normalized motor decomposes as m = (cos u - v sin u·I) +
//	(sin u + v cos u·I)·L̂ with L̂ the normalized bivector axis.  Its
//	bivector part l satisfies l² = -s2² - 2 s2 p2·I with s2 = sin u
//	and p2 = v cos u, so one numeric self-product recovers both, and
//	u = atan2(s2, s1) since s2 is non-negative.  v = p2/s1 away from
//	u = π/2; there the pseudoscalar part p1 = -v sin u takes over and
//	v = -p1/s2.  The result is
//
//	    log m = (u + v·I) · (1/s2 - p2/s2²·I) · l.
//
//	A motor with no euclidean bivector content (s2 below opts.Epsilon)
//	is a pure translation 1 + l, whose exact logarithm is l itself.
//
// Log assumes m is normalized (m ~m = 1); anything else is
// garbage-in/garbage-out per the engine's numeric policy.
func Log(m Motor, opts *Options) (Line, error) {
	s1 := m.Select(E)
	p1 := m.Select(E0123)
	l := Line{
		MX: m.Select(E01),
		MY: m.Select(E02),
		DZ: m.Select(E12),
		MZ: m.Select(E03),
		DY: m.Select(E13),
		DX: m.Select(E23),
	}

	l2, err := square(l)
	if err != nil {
		return Line{}, err
	}
	s2 := math.Sqrt(-l2.Select(E))
	if s2 < epsilonOf(opts) {
		// Pure translation 1 + l: log is the bivector part as-is.
		return l, nil
	}
	p2 := -l2.Select(E0123) / (2 * s2)

	u := math.Atan2(s2, s1)
	var v float64
	if math.Abs(s1) < epsilonOf(opts) {
		v = -p1 / s2
	} else {
		v = p2 / s1
	}

	uv := pair(u, v)
	invNorm := pair(1/s2, -p2/(s2*s2))

	ent, err := engine.Compute(std, func(args []*engine.Expr) *engine.Expr {
		return engine.Mul(args[0], args[1], args[2])
	}, uv, invNorm, l)
	if err != nil {
		return Line{}, err
	}
	return LineFromEntity(ent), nil
}
