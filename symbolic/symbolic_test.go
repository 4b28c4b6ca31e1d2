package symbolic_test

import (
	"testing"

	"github.com/katalvlaran/gal/algebra"
	"github.com/katalvlaran/gal/rational"
	"github.com/katalvlaran/gal/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(n, d int64) rational.Rat {
	r, err := rational.New(n, d)
	if err != nil {
		panic(err)
	}
	return r
}

func pga(t *testing.T) *algebra.Algebra {
	t.Helper()
	a, err := algebra.New(algebra.Metric{Degenerate: 1, Positive: 3})
	require.NoError(t, err)
	return a
}

// basisVar returns the multivector holding one fresh indeterminate at
// the given blade with unit coefficient.
func basisVar(blade uint32, id uint32) symbolic.Multivector {
	return symbolic.NewMultivector(symbolic.NewTerm(blade, symbolic.MonVar(rational.FromInt(1), id)))
}

// TestNewMon_Canonical verifies indeterminate sorting and merging.
func TestNewMon_Canonical(t *testing.T) {
	m := symbolic.NewMon(rat(1, 2),
		symbolic.Ind{ID: 7, Power: 1},
		symbolic.Ind{ID: 3, Power: 2},
		symbolic.Ind{ID: 7, Power: 1},
	)
	require.Len(t, m.Inds, 2)
	assert.Equal(t, symbolic.Ind{ID: 3, Power: 2}, m.Inds[0])
	assert.Equal(t, symbolic.Ind{ID: 7, Power: 2}, m.Inds[1], "duplicate ids must merge powers")
	assert.Equal(t, 4, m.Degree())
}

// TestMonMul verifies coefficient multiplication and multiplicity
// addition when the same id appears in both operands.
func TestMonMul(t *testing.T) {
	a := symbolic.NewMon(rat(1, 2), symbolic.Ind{ID: 1, Power: 1}, symbolic.Ind{ID: 2, Power: 1})
	b := symbolic.NewMon(rat(-2, 3), symbolic.Ind{ID: 2, Power: 1}, symbolic.Ind{ID: 5, Power: 1})

	p := a.Mul(b)
	assert.True(t, p.Coeff.Equal(rat(-1, 3)))
	require.Len(t, p.Inds, 3)
	assert.Equal(t, symbolic.Ind{ID: 1, Power: 1}, p.Inds[0])
	assert.Equal(t, symbolic.Ind{ID: 2, Power: 2}, p.Inds[1], "shared id multiplicities add")
	assert.Equal(t, symbolic.Ind{ID: 5, Power: 1}, p.Inds[2])
}

// TestCanonicalization_MergeAndOrder verifies grouping by blade,
// like-monomial merging and (grade, blade) ordering.
func TestCanonicalization_MergeAndOrder(t *testing.T) {
	one := rational.FromInt(1)
	mv := symbolic.NewMultivector(
		symbolic.NewTerm(0b110, symbolic.MonVar(one, 4)),           // e12: x4
		symbolic.NewTerm(0b1, symbolic.MonVar(one, 0)),             // e0: x0
		symbolic.NewTerm(0b110, symbolic.MonVar(rat(1, 2), 4)),     // e12: x4/2 (same ind set: merge)
		symbolic.NewTerm(0, symbolic.MonConst(rational.FromInt(3))), // scalar
	)

	assert.Equal(t, []uint32{0, 0b1, 0b110}, mv.Blades(), "terms ordered by (grade, blade)")
	assert.Equal(t, 1, mv.GradeSize(0))
	assert.Equal(t, 1, mv.GradeSize(1))
	assert.Equal(t, 1, mv.GradeSize(2))

	e12, ok := mv.Select(0b110)
	require.True(t, ok)
	require.Len(t, e12.Mons, 1, "like monomials under one blade must merge")
	assert.True(t, e12.Mons[0].Coeff.Equal(rat(3, 2)))
}

// TestCanonicalization_DistinctIndSetsKeptApart verifies that
// monomials over different indeterminate sets stay separate under the
// same blade.
func TestCanonicalization_DistinctIndSetsKeptApart(t *testing.T) {
	one := rational.FromInt(1)
	mv := symbolic.NewMultivector(
		symbolic.NewTerm(0b10, symbolic.MonVar(one, 1)),
		symbolic.NewTerm(0b10, symbolic.MonVar(one, 2)),
	)
	term, ok := mv.Select(0b10)
	require.True(t, ok)
	assert.Len(t, term.Mons, 2)
}

// TestZeroTermElimination verifies that t - t cancels to the zero
// multivector (spec: zero-term elimination).
func TestZeroTermElimination(t *testing.T) {
	v := basisVar(0b110, 9)
	diff := symbolic.Sub(v, v)
	assert.True(t, diff.IsZero(), "t - t must canonicalize to zero")
	assert.Equal(t, 0, diff.TermCount())
	assert.Equal(t, "0", diff.String())
}

// TestDeadMonomialFiltering verifies that a monomial with exact zero
// coefficient never appears in a canonical multivector.
func TestDeadMonomialFiltering(t *testing.T) {
	dead := symbolic.MonVar(rat(0, 1), 3)
	assert.True(t, dead.IsDead())

	mv := symbolic.NewMultivector(
		symbolic.NewTerm(0b100, dead),
		symbolic.NewTerm(0b10, symbolic.MonVar(rational.FromInt(1), 1)),
	)
	assert.Equal(t, []uint32{0b10}, mv.Blades(), "blade with only dead monomials must vanish")
	for _, term := range mv.Terms() {
		for _, m := range term.Mons {
			assert.False(t, m.IsDead())
		}
	}
}

// TestGradePartition verifies the per-grade counters against popcount
// grouping for a mixed multivector.
func TestGradePartition(t *testing.T) {
	one := rational.FromInt(1)
	mv := symbolic.NewMultivector(
		symbolic.NewTerm(0, symbolic.MonConst(one)),
		symbolic.NewTerm(0b1, symbolic.MonVar(one, 0)),
		symbolic.NewTerm(0b1000, symbolic.MonVar(one, 1)),
		symbolic.NewTerm(0b110, symbolic.MonVar(one, 2)),
		symbolic.NewTerm(0b1111, symbolic.MonVar(one, 3)),
	)
	assert.Equal(t, 4, mv.MaxGrade())
	want := map[int]int{0: 1, 1: 2, 2: 1, 3: 0, 4: 1}
	total := 0
	for g, n := range want {
		assert.Equal(t, n, mv.GradeSize(g), "grade %d", g)
		total += n
	}
	assert.Equal(t, total, mv.TermCount())

	bi := symbolic.GradeSelect(mv, 1)
	assert.Equal(t, []uint32{0b1, 0b1000}, bi.Blades())
}

// TestCanonicalFormUniqueness verifies distributivity structurally:
// (a+b)*c and a*c + b*c canonicalize to identical multivectors.
func TestCanonicalFormUniqueness(t *testing.T) {
	alg := pga(t)
	a := basisVar(0b10, 0)   // x0 e1
	b := basisVar(0b100, 1)  // x1 e2
	c := basisVar(0b1000, 2) // x2 e3

	left, err := symbolic.Product(alg, symbolic.Geometric, symbolic.Add(a, b), c)
	require.NoError(t, err)

	ac, err := symbolic.Product(alg, symbolic.Geometric, a, c)
	require.NoError(t, err)
	bc, err := symbolic.Product(alg, symbolic.Geometric, b, c)
	require.NoError(t, err)
	right := symbolic.Add(ac, bc)

	assert.True(t, left.Equal(right), "distributed products must share canonical form:\n%s\nvs\n%s", left, right)
	assert.Equal(t, left.Blades(), right.Blades())
}

// TestProduct_DegenerateAnnihilation verifies that the degenerate e0
// annihilates squared terms symbolically, not just numerically.
func TestProduct_DegenerateAnnihilation(t *testing.T) {
	alg := pga(t)
	e01 := basisVar(0b11, 0)
	sq, err := symbolic.Product(alg, symbolic.Geometric, e01, e01)
	require.NoError(t, err)
	assert.True(t, sq.IsZero(), "e01 * e01 must vanish exactly in the degenerate metric")
}

// TestProduct_OuterDropsSharedVectors verifies the grade-raising
// filter of the outer product.
func TestProduct_OuterDropsSharedVectors(t *testing.T) {
	alg := pga(t)
	e1 := basisVar(0b10, 0)
	e12 := basisVar(0b110, 1)

	wedge, err := symbolic.Product(alg, symbolic.Outer, e1, e12)
	require.NoError(t, err)
	assert.True(t, wedge.IsZero(), "e1 ^ e12 shares e1 and must drop")

	e3 := basisVar(0b1000, 2)
	wedge, err = symbolic.Product(alg, symbolic.Outer, e12, e3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0b1110}, wedge.Blades())
}

// TestProduct_InnerKeepsGradeLowering verifies the grade-lowering
// filter of the inner product.
func TestProduct_InnerKeepsGradeLowering(t *testing.T) {
	alg := pga(t)
	e1 := basisVar(0b10, 0)
	e12 := basisVar(0b110, 1)

	inner, err := symbolic.Product(alg, symbolic.Inner, e1, e12)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0b100}, inner.Blades(), "e1 · e12 lowers to e2")

	// Grade-raising pairs must be filtered out: e1 e2 raises to e12.
	e2 := basisVar(0b100, 3)
	inner, err = symbolic.Product(alg, symbolic.Inner, e1, e2)
	require.NoError(t, err)
	assert.True(t, inner.IsZero(), "orthogonal vectors have no grade-lowering part")
}

// TestReverse verifies the grade-mod-4 sign rule through the op.
func TestReverse(t *testing.T) {
	alg := pga(t)
	one := rational.FromInt(1)
	mv := symbolic.NewMultivector(
		symbolic.NewTerm(0b10, symbolic.MonVar(one, 0)),   // grade 1: +
		symbolic.NewTerm(0b110, symbolic.MonVar(one, 1)),  // grade 2: -
		symbolic.NewTerm(0b1110, symbolic.MonVar(one, 2)), // grade 3: -
		symbolic.NewTerm(0b1111, symbolic.MonVar(one, 3)), // grade 4: +
	)
	rev, err := symbolic.Reverse(alg, mv)
	require.NoError(t, err)

	wantSigns := map[uint32]int64{0b10: 1, 0b110: -1, 0b1110: -1, 0b1111: 1}
	for blade, sign := range wantSigns {
		term, ok := rev.Select(blade)
		require.True(t, ok)
		assert.True(t, term.Mons[0].Coeff.Equal(rational.FromInt(sign)), "blade %04b", blade)
	}

	// Reversion is an involution.
	back, err := symbolic.Reverse(alg, rev)
	require.NoError(t, err)
	assert.True(t, back.Equal(mv))
}

// TestDual verifies the complement remap and its blade linearity.
func TestDual(t *testing.T) {
	alg := pga(t)
	e1 := basisVar(0b10, 0)
	d, err := symbolic.Dual(alg, e1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0b1101}, d.Blades(), "dual of e1 is the complement e023")
	assert.Equal(t, e1.TermCount(), d.TermCount(), "dual is a linear remap, term count preserved")
}

// TestScaleAndNegate verifies scalar multiplication and the zero-scale
// collapse.
func TestScaleAndNegate(t *testing.T) {
	v := basisVar(0b10, 0)

	doubled := symbolic.Scale(v, rational.FromInt(2))
	term, ok := doubled.Select(0b10)
	require.True(t, ok)
	assert.True(t, term.Mons[0].Coeff.Equal(rational.FromInt(2)))
	assert.Equal(t, v.Blades(), doubled.Blades(), "scaling never changes blade structure")

	assert.True(t, symbolic.Add(v, symbolic.Negate(v)).IsZero())
	assert.True(t, symbolic.Scale(v, rat(0, 1)).IsZero(), "zero scale collapses the multivector")
}

// TestProduct_InvalidBlade verifies fail-fast rejection of blades
// outside the algebra.
func TestProduct_InvalidBlade(t *testing.T) {
	alg := pga(t)
	bad := basisVar(0b10000, 0) // 5th basis vector: not in PGA
	good := basisVar(0b10, 1)

	_, err := symbolic.Product(alg, symbolic.Geometric, bad, good)
	assert.ErrorIs(t, err, algebra.ErrInvalidBlade)
	_, err = symbolic.Dual(alg, bad)
	assert.ErrorIs(t, err, algebra.ErrInvalidBlade)
	_, err = symbolic.Reverse(alg, bad)
	assert.ErrorIs(t, err, algebra.ErrInvalidBlade)
}
