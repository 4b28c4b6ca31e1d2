package pga

import (
	"github.com/katalvlaran/gal/algebra"
	"github.com/katalvlaran/gal/engine"
	"github.com/katalvlaran/gal/rational"
	"github.com/katalvlaran/gal/symbolic"
)

// Basis blade masks of the PGA: bit 0 is the degenerate e0, bits 1-3
// are the euclidean e1, e2, e3.
const (
	E     uint32 = 0 // scalar
	E0    uint32 = 0b1
	E1    uint32 = 0b10
	E2    uint32 = 0b100
	E3    uint32 = 0b1000
	E01   uint32 = 0b11
	E02   uint32 = 0b101
	E03   uint32 = 0b1001
	E12   uint32 = 0b110
	E13   uint32 = 0b1010
	E23   uint32 = 0b1100
	E012  uint32 = 0b111
	E013  uint32 = 0b1011
	E023  uint32 = 0b1101
	E123  uint32 = 0b1110
	E0123 uint32 = 0b1111
)

// std is the one immutable PGA algebra instance shared by the package.
var std = mustAlgebra()

func mustAlgebra() *algebra.Algebra {
	a, err := algebra.New(algebra.Metric{Degenerate: 1, Positive: 3})
	if err != nil {
		panic("pga: building the standard algebra: " + err.Error())
	}
	return a
}

// Algebra returns the 3D projective algebra instance: metric (3, 0, 1)
// with the degenerate e0 at bit 0.  The returned value is immutable
// and shared.
func Algebra() *algebra.Algebra { return std }

// motorBlades is the even-subalgebra layout of a motor, in the order
// its numeric slots are stored.
var motorBlades = [8]uint32{E, E01, E02, E12, E03, E13, E23, E0123}

// PS returns a constant unit-pseudoscalar leaf e0123 for expression
// building, e.g. dual-number combinations of the form u + v*PS().
func PS() *engine.Expr {
	return engine.Leaf(symbolic.NewMultivector(
		symbolic.NewTerm(E0123, symbolic.MonConst(rational.FromInt(1))),
	))
}

// IPS returns the pseudoscalar's formal inverse under reversion, ~I.
// Grade 4 is self-reverse, so here it coincides with PS; the
// degenerate pseudoscalar has no geometric inverse (I squares to 0).
func IPS() *engine.Expr {
	return PS()
}

// Options tunes the numeric branch selection of Exp and Log.
//
// Epsilon is the threshold below which the euclidean part of a
// bivector (or the scalar part of a motor) is treated as zero,
// switching to the exact parabolic (pure-translation) closed form.
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the standard branch threshold.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-6}
}

func epsilonOf(opts *Options) float64 {
	if opts == nil {
		return DefaultOptions().Epsilon
	}
	return opts.Epsilon
}
