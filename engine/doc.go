// Package engine evaluates lazy geometric algebra expressions into
// canonical symbolic multivectors and lowers them into flat numeric
// plans.
//
// The pipeline has two phases:
//
//  1. Build-and-simplify: user code composes an Expr tree (Sum, Mul,
//     Wedge, Dot, Dual, Reverse, Scale, Pow, Sandwich, ...) over
//     symbolic multivector leaves; Evaluate walks the tree with an
//     algebra's blade rules and produces one canonical
//     symbolic.Multivector.
//  2. Lowering: Lower flattens the canonical multivector into a Plan —
//     per output slot (one per surviving blade, in grade order), the
//     list of input ids and exact constant coefficients whose products
//     sum into that slot.  Plan.Run executes the plan against a live
//     numeric input array.
//
// The Compute driver ties the phases together the way entity code uses
// them: it allocates contiguous indeterminate ids for each Source,
// admits each source's indeterminate expression as a leaf, evaluates
// the caller's expression, lowers it, runs it against the sources'
// numeric data and returns a generic Entity (an ordered blade list
// plus a value array, addressable with Select).
//
// Structural errors (nil expressions, invalid blades, negative powers)
// are rejected before any numeric work.  Numeric hazards — NaN or Inf
// arising from degenerate caller inputs — pass through untouched by
// IEEE semantics; the engine never clamps or checks them.
//
// Everything is single-threaded and pure: each operation is a function
// from immutable inputs to a freshly built value, and the only counter
// in sight is the explicit Allocator threaded through entity
// construction.
package engine
