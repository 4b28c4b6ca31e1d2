package algebra_test

import (
	"math/bits"
	"testing"

	"github.com/katalvlaran/gal/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pga returns the 3D projective algebra used throughout the tests:
// e0 degenerate at bit 0, e1..e3 positive.
func pga(t *testing.T) *algebra.Algebra {
	t.Helper()
	a, err := algebra.New(algebra.Metric{Degenerate: 1, Positive: 3})
	require.NoError(t, err)
	return a
}

// TestNew_Validation covers the structural failure modes.
func TestNew_Validation(t *testing.T) {
	_, err := algebra.New(algebra.Metric{})
	assert.ErrorIs(t, err, algebra.ErrEmptyMetric)

	_, err = algebra.New(algebra.Metric{Positive: 17})
	assert.ErrorIs(t, err, algebra.ErrDimensionTooLarge)

	_, err = algebra.New(algebra.Metric{Positive: -1, Negative: 2})
	assert.ErrorIs(t, err, algebra.ErrDimensionTooLarge)
}

// TestBasicStructure verifies dimension, blade count and pseudoscalar.
func TestBasicStructure(t *testing.T) {
	a := pga(t)
	assert.Equal(t, 4, a.Dim())
	assert.Equal(t, 16, a.BladeCount())
	assert.Equal(t, uint32(0b1111), a.Pseudoscalar())

	assert.NoError(t, a.CheckBlade(0b1111))
	assert.ErrorIs(t, a.CheckBlade(0b10000), algebra.ErrInvalidBlade)
}

// TestGrades verifies grade = popcount for every blade.
func TestGrades(t *testing.T) {
	a := pga(t)
	for b := uint32(0); b < uint32(a.BladeCount()); b++ {
		assert.Equal(t, bits.OnesCount32(b), a.Grade(b), "blade %04b", b)
	}
}

// TestProduct_VectorSquares verifies the metric on the basis vectors:
// e1..e3 square to +1, the degenerate e0 squares to 0.
func TestProduct_VectorSquares(t *testing.T) {
	a := pga(t)

	for _, e := range []uint32{0b10, 0b100, 0b1000} {
		sign, blade := a.Product(e, e)
		assert.Equal(t, int8(1), sign, "e%04b squared", e)
		assert.Equal(t, uint32(0), blade)
	}

	sign, blade := a.Product(0b1, 0b1)
	assert.Equal(t, int8(0), sign, "degenerate e0 squared must vanish")
	assert.Equal(t, uint32(0), blade)
}

// TestProduct_Anticommutativity verifies e_i e_j = -e_j e_i for i != j.
func TestProduct_Anticommutativity(t *testing.T) {
	a := pga(t)
	vectors := []uint32{0b1, 0b10, 0b100, 0b1000}
	for i, x := range vectors {
		for j, y := range vectors {
			if i == j {
				continue
			}
			sx, bx := a.Product(x, y)
			sy, by := a.Product(y, x)
			assert.Equal(t, bx, by, "e%04b e%04b blade", x, y)
			assert.Equal(t, -sx, sy, "e%04b e%04b sign", x, y)
			assert.Equal(t, x|y, bx, "product of distinct vectors is their bivector")
		}
	}
}

// TestProduct_KnownBlades pins a handful of hand-checked PGA products.
func TestProduct_KnownBlades(t *testing.T) {
	a := pga(t)

	cases := []struct {
		x, y  uint32
		sign  int8
		blade uint32
	}{
		{0b110, 0b110, -1, 0},           // e12 e12 = -1
		{0b110, 0b1110, -1, 0b1000},     // e12 e123 = -e3
		{0b1110, 0b110, -1, 0b1000},     // e123 e12 = -e3 (commute)
		{0b110, 0b1011, -1, 0b1101},     // e12 e013 = -e023
		{0b1011, 0b110, 1, 0b1101},      // e013 e12 = +e023 (anticommute)
		{0b1001, 0b1110, 1, 0b111},      // e03 e123 = +e012
		{0b1110, 0b1001, -1, 0b111},     // e123 e03 = -e012
		{0b11, 0b11, 0, 0},              // e01 e01 = 0 (degenerate)
		{0b110, 0b1001, 1, 0b1111},      // e12 e03 = +e0123
		{0b1111, 0b110, -1, 0b1001},     // e0123 e12 = -e03
		{0b111, 0b1001, 0, 0b1110},      // e012 e03 shares e0, vanishes
	}
	for _, c := range cases {
		sign, blade := a.Product(c.x, c.y)
		assert.Equal(t, c.sign, sign, "%04b * %04b sign", c.x, c.y)
		assert.Equal(t, c.blade, blade, "%04b * %04b blade", c.x, c.y)
	}
}

// TestReverseSign verifies the grade-mod-4 reversion rule.
func TestReverseSign(t *testing.T) {
	a := pga(t)
	want := map[int]int8{0: 1, 1: 1, 2: -1, 3: -1, 4: 1}
	for b := uint32(0); b < uint32(a.BladeCount()); b++ {
		assert.Equal(t, want[a.Grade(b)], a.ReverseSign(b), "blade %04b", b)
	}
}

// TestDual verifies that b * Dual(b) = +I for every blade, and that
// the complement has complementary grade.
func TestDual(t *testing.T) {
	a := pga(t)
	for b := uint32(0); b < uint32(a.BladeCount()); b++ {
		sign, comp := a.Dual(b)
		assert.Equal(t, a.Pseudoscalar(), b^comp, "complement blade %04b", b)
		assert.Equal(t, a.Dim()-a.Grade(b), a.Grade(comp))

		psign, pblade := a.Product(b, comp)
		require.Equal(t, a.Pseudoscalar(), pblade)
		assert.Equal(t, int8(1), psign*sign, "b * Dual(b) must be +I for blade %04b", b)
	}
}

// TestEuclideanAndNegativeSquares checks metrics beyond PGA.
func TestEuclideanAndNegativeSquares(t *testing.T) {
	a, err := algebra.New(algebra.Metric{Positive: 2, Negative: 1})
	require.NoError(t, err)

	// Positive vectors occupy the low bits here (no degenerate ones).
	sign, _ := a.Product(0b1, 0b1)
	assert.Equal(t, int8(1), sign)
	sign, _ = a.Product(0b100, 0b100)
	assert.Equal(t, int8(-1), sign, "third vector squares to -1")
}
