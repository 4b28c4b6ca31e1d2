package algebra

import (
	"errors"
	"math/bits"
)

var (
	// ErrDimensionTooLarge indicates a metric with more basis vectors
	// than the blade mask representation supports.
	ErrDimensionTooLarge = errors.New("algebra: metric exceeds the supported 16 basis vectors")

	// ErrEmptyMetric indicates a metric with no basis vectors at all.
	ErrEmptyMetric = errors.New("algebra: metric must declare at least one basis vector")

	// ErrInvalidBlade indicates a blade mask outside the algebra's
	// basis-element range.
	ErrInvalidBlade = errors.New("algebra: blade is not a basis element of this algebra")
)

// maxDim bounds the number of basis vectors so per-blade tables stay
// small (2^16 entries at most).
const maxDim = 16

// Metric is a geometric algebra signature: how many basis vectors
// square to 0, +1 and -1.  Degenerate vectors occupy the lowest bit
// positions, then positive, then negative.
type Metric struct {
	Degenerate int
	Positive   int
	Negative   int
}

// Dim returns the total number of basis vectors.
func (m Metric) Dim() int {
	return m.Degenerate + m.Positive + m.Negative
}

// Algebra holds the precomputed structure of a geometric algebra over
// a fixed metric.  Construct with New; never mutate.
type Algebra struct {
	metric   Metric
	dim      int
	grades   []int  // grade per blade mask
	revSigns []int8 // reversion sign per blade mask
	dualSign []int8 // complement sign per blade mask (see Dual)
}

// New derives the algebra for the given metric.
//
// Errors:
//   - ErrEmptyMetric        — no basis vectors declared.
//   - ErrDimensionTooLarge  — more than 16 basis vectors.
func New(m Metric) (*Algebra, error) {
	dim := m.Dim()
	if dim == 0 {
		return nil, ErrEmptyMetric
	}
	if dim > maxDim || m.Degenerate < 0 || m.Positive < 0 || m.Negative < 0 {
		return nil, ErrDimensionTooLarge
	}

	a := &Algebra{
		metric:   m,
		dim:      dim,
		grades:   make([]int, 1<<dim),
		revSigns: make([]int8, 1<<dim),
		dualSign: make([]int8, 1<<dim),
	}
	pseudo := a.Pseudoscalar()
	for b := uint32(0); b < uint32(1<<dim); b++ {
		g := bits.OnesCount32(b)
		a.grades[b] = g
		// Reversion flips sign when the grade is 2 or 3 mod 4.
		if g%4 > 1 {
			a.revSigns[b] = -1
		} else {
			a.revSigns[b] = 1
		}
		// The complement sign is fixed so that b * Dual(b) = +I.
		// Disjoint blades never touch the metric, so this is ±1 even
		// in degenerate algebras.
		a.dualSign[b] = reorderSign(b, pseudo^b)
	}
	return a, nil
}

// Metric returns the signature the algebra was built from.
func (a *Algebra) Metric() Metric { return a.metric }

// Dim returns the number of basis vectors.
func (a *Algebra) Dim() int { return a.dim }

// BladeCount returns the number of basis blades (2^dim).
func (a *Algebra) BladeCount() int { return 1 << a.dim }

// Pseudoscalar returns the highest-grade blade mask.
func (a *Algebra) Pseudoscalar() uint32 {
	return uint32(1<<a.dim) - 1
}

// CheckBlade reports ErrInvalidBlade when b is outside the algebra's
// basis-element range.
func (a *Algebra) CheckBlade(b uint32) error {
	if b >= uint32(1<<a.dim) {
		return ErrInvalidBlade
	}
	return nil
}

// Grade returns the grade (popcount) of a valid blade mask.
func (a *Algebra) Grade(b uint32) int {
	return a.grades[b]
}

// vectorSquare returns the metric square of basis vector i.
func (a *Algebra) vectorSquare(i int) int8 {
	switch {
	case i < a.metric.Degenerate:
		return 0
	case i < a.metric.Degenerate+a.metric.Positive:
		return 1
	default:
		return -1
	}
}

// reorderSign counts the transpositions needed to interleave the basis
// vectors of x and y into canonical order and returns the resulting
// parity sign.
func reorderSign(x, y uint32) int8 {
	n := 0
	x >>= 1
	for x != 0 {
		n += bits.OnesCount32(x & y)
		x >>= 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Product returns the geometric product of two valid blade masks as a
// sign in {-1, 0, +1} and the resulting blade (always x XOR y).  A
// sign of 0 means the product vanishes because a shared basis vector
// squares to zero in the metric.
func (a *Algebra) Product(x, y uint32) (int8, uint32) {
	sign := reorderSign(x, y)
	for common := x & y; common != 0; common &= common - 1 {
		i := bits.TrailingZeros32(common)
		sign *= a.vectorSquare(i)
	}
	return sign, x ^ y
}

// ReverseSign returns the sign a blade picks up under reversion:
// (-1)^(g(g-1)/2) for grade g.
func (a *Algebra) ReverseSign(b uint32) int8 {
	return a.revSigns[b]
}

// Dual returns the complement blade of b together with the sign chosen
// so that b * Dual(b) = +I (the pseudoscalar).  The map is linear and
// metric-independent: disjoint blades never multiply through the
// metric, so the sign is always ±1.
func (a *Algebra) Dual(b uint32) (int8, uint32) {
	return a.dualSign[b], a.Pseudoscalar() ^ b
}
