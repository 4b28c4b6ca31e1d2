// Package pga instantiates the engine for the projective geometric
// algebra of euclidean 3-space: 16 basis blades over e0 (degenerate,
// e0² = 0) and e1, e2, e3 (each squaring to +1).
//
// Geometry is represented dually: a point is the intersection of three
// planes (a trivector), a plane is a vector, and lines live in the
// bivector blades using Plücker coordinates.  The ideal lines e01,
// e02, e03 are intersections with the plane at infinity; e23, e13 and
// e12 carry the direction components along x, y and z.
//
// Entity types (Scalar, Point, Vector, Plane, Line, Rotor, Translator,
// Motor) are thin numeric value types.  Each exposes the engine's
// Source protocol: IE(id) produces the entity's indeterminate
// expression — its symbolic multivector anchored at a contiguous id
// range — while Size/IndCount/Data feed the numeric side.  Entities
// never simplify or evaluate anything themselves.
//
// Rotors and translators compose into motors (screw motions).  Exp and
// Log convert between a motor and its bivector generator in closed
// form; this is the one deliberate breakpoint where the engine leaves
// the symbolic layer and evaluates two scalar quantities numerically
// to feed the transcendental functions.
//
// Numeric hazards follow the engine's policy: normalizing a zero-length
// direction or taking Exp/Log of degenerate inputs produces NaN by
// IEEE semantics, unchecked.  Callers own the non-degeneracy of their
// geometry.
package pga
