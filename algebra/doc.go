// Package algebra derives the structure of a geometric algebra from a
// metric signature: basis blades, the geometric-product sign/blade
// rule, grades, reversion signs and the complement (dual) map.
//
// A blade is identified by a bitmask over basis vectors: bit i set
// means the basis vector e_i participates.  The grade of a blade is
// the popcount of its mask.  The product of two blades is always the
// XOR of their masks together with a sign in {-1, 0, +1}: the sign
// combines the parity of the transpositions needed to interleave the
// two factor sequences with the metric squares of the shared vectors.
// A shared vector squaring to zero annihilates the product — this is
// what makes degenerate (projective) metrics work.
//
// Basis vector ordering convention: degenerate vectors occupy the
// lowest bit positions, followed by the positive-square vectors, then
// the negative-square vectors.  The 3D projective algebra is therefore
// Metric{Degenerate: 1, Positive: 3} with e_0 at bit 0.
//
// All tables are computed once by New and never mutated afterwards; an
// Algebra is safe for concurrent reads.
package algebra
