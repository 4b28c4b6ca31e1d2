// Package symbolic implements the sparse symbolic multivector
// representation at the heart of the engine, together with its
// canonicalization and linear/product operations.
//
// The representation is a three-level value hierarchy:
//
//   - Ind  — an indeterminate: a reference (by id) to one runtime
//     numeric input, with a multiplicity (power).
//   - Mon  — a monomial: an exact rational coefficient times a product
//     of indeterminates.  A monomial whose coefficient is exactly zero
//     is "dead" and is filtered out by canonicalization.
//   - Term — a monomial sum bound to one basis blade.
//   - Multivector — an ordered, deduplicated collection of terms,
//     partitioned by grade.
//
// Canonical form is the package's core invariant: terms are sorted by
// (grade, blade), no two terms share a blade, each term's monomials
// are merged by indeterminate set (coefficients summed exactly), dead
// monomials are dropped, and monomials are deterministically ordered.
// Two symbolically equal expressions therefore canonicalize to
// structurally identical multivectors, which is what makes the final
// numeric lowering deterministic and testable.
//
// Everything here is a pure value: operations consume multivectors and
// construct new ones; nothing is mutated after publication.  Blade
// semantics (product signs, grades, duals) are supplied by an
// *algebra.Algebra; operations that consult it reject blades outside
// the algebra's range with algebra.ErrInvalidBlade before touching any
// numeric state.
package symbolic
