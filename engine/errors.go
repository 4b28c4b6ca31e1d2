package engine

import "errors"

var (
	// ErrNilExpr indicates a nil expression node reached Evaluate.
	ErrNilExpr = errors.New("engine: nil expression")

	// ErrNegativePower indicates Pow with a negative exponent; general
	// multivector inverses are not defined here.
	ErrNegativePower = errors.New("engine: negative power is not supported")

	// ErrUnknownOp indicates a corrupted expression node.
	ErrUnknownOp = errors.New("engine: unknown expression operation")

	// ErrShortInput indicates a plan referencing input ids beyond the
	// supplied numeric array.
	ErrShortInput = errors.New("engine: input array shorter than the plan requires")

	// ErrEntityShape indicates mismatched blade/value lengths when
	// constructing an Entity.
	ErrEntityShape = errors.New("engine: blade list and value list lengths differ")
)
