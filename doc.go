// Package gal is a symbolic geometric-algebra engine: expressions over
// multivectors are evaluated exactly with rational coefficients, then
// lowered to flat numeric plans that run on plain float64 slices.
//
// 🚀 What is gal?
//
//	A two-phase pipeline for geometric algebra over any signature:
//		• Exact core: rational arithmetic, canonical blade products, no rounding
//		• Lazy expressions: sums, products, duals, sandwiches built as trees
//		• Compilation: symbolic results lowered to multiply-accumulate plans
//		• 3D PGA layer: points, lines, planes, rotors, translators, motors
//		• Closed-form motor exp/log for rigid-motion interpolation
//
// ✨ Why choose gal?
//
//   - Exact where it matters – all cancellation happens in rationals,
//     floats only ever enter at the final numeric pass
//   - Signature-agnostic – degenerate, positive and negative basis
//     vectors in any mix up to dimension 16
//   - Compile once, run often – a plan is a flat slice of factor lists
//   - Pure Go – no cgo, a single testing dependency
//
// Under the hood, everything is organized under five subpackages:
//
//	rational/ — exact rational coefficients with canonical reduced form
//	algebra/  — metric signatures, blade products, duals, reversion
//	symbolic/ — indeterminates, monomials, canonical multivectors
//	engine/   — expression trees, evaluation, lowering, numeric plans
//	pga/      — 3D projective geometric algebra entities and motors
//
// Quick example:
//
//	m, _ := pga.Compose(pga.NewRotor(math.Pi/2, 0, 0, 1), pga.NewTranslator(2, 0, 0, 1))
//	p, _ := pga.Apply(m, pga.NewPoint(1, 0, 0)) // (0, -1, 2)
//
// See each subpackage's doc.go for the full API surface.
//
//	go get github.com/katalvlaran/gal
package gal
