// Package rational implements exact rational coefficients for symbolic
// geometric algebra.
//
// Why exact arithmetic?
//
//	Blade signs and half-angle factors (±1, ±1/2, table signs) must
//	cancel exactly during simplification, or spurious nonzero terms
//	survive into the final numeric plan.  Floating-point coefficients
//	accumulate drift across repeated merge/cancel passes; rationals do
//	not.
//
// The Rat type is a small comparable value type (int64 numerator and
// denominator, always reduced, sign carried on the numerator).  The
// zero value of Rat is the exact rational 0.
//
// All operations are pure: they return a new Rat and never mutate the
// receiver.  Division by an exact zero is a programming error surfaced
// as ErrDivisionByZero; it must not occur in valid algebra tables.
package rational
