package rational

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero indicates division (or inversion) by an exact zero.
var ErrDivisionByZero = errors.New("rational: division by zero")

// Rat is an exact rational number stored in lowest terms with the sign
// carried on the numerator.  The zero value is the rational 0.
//
// Rat is comparable: two Rats produced by this package's constructors
// and operations are == exactly when they are numerically equal.
type Rat struct {
	num int64
	den int64 // stored as 0 for the zero value; read through denom()
}

// New returns num/den reduced to canonical form.
// It returns ErrDivisionByZero when den is 0.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrDivisionByZero
	}
	return reduce(num, den), nil
}

// FromInt returns the rational n/1.
func FromInt(n int64) Rat {
	return reduce(n, 1)
}

// denom reads the denominator, mapping the zero value's 0 to 1 so that
// Rat{} behaves as the exact rational 0 everywhere.
func (r Rat) denom() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// reduce brings num/den (den != 0) into canonical form: gcd divided
// out, denominator strictly positive, zero stored as 0/1.
func reduce(num, den int64) Rat {
	if num == 0 {
		return Rat{0, 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Rat{num / g, den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Num returns the canonical (sign-carrying) numerator.
func (r Rat) Num() int64 { return r.num }

// Den returns the canonical (strictly positive) denominator.
func (r Rat) Den() int64 { return r.denom() }

// Add returns r + o.
func (r Rat) Add(o Rat) Rat {
	return reduce(r.num*o.denom()+o.num*r.denom(), r.denom()*o.denom())
}

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat {
	return reduce(r.num*o.denom()-o.num*r.denom(), r.denom()*o.denom())
}

// Mul returns r * o.
func (r Rat) Mul(o Rat) Rat {
	return reduce(r.num*o.num, r.denom()*o.denom())
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{-r.num, r.denom()}
}

// Inv returns 1/r, or ErrDivisionByZero when r is zero.
func (r Rat) Inv() (Rat, error) {
	if r.num == 0 {
		return Rat{}, ErrDivisionByZero
	}
	return reduce(r.denom(), r.num), nil
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Rat) Div(o Rat) (Rat, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rat{}, err
	}
	return r.Mul(inv), nil
}

// MulInt returns r scaled by the integer n.
func (r Rat) MulInt(n int64) Rat {
	return reduce(r.num*n, r.denom())
}

// IsZero reports whether r is exactly 0.
func (r Rat) IsZero() bool { return r.num == 0 }

// Sign returns -1, 0 or +1 according to the sign of r.
func (r Rat) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Cmp compares r and o, returning -1, 0 or +1.
func (r Rat) Cmp(o Rat) int {
	return r.Sub(o).Sign()
}

// Equal reports exact numeric equality.
func (r Rat) Equal(o Rat) bool {
	return r.num == o.num && r.denom() == o.denom()
}

// Float64 converts r to the nearest float64.
func (r Rat) Float64() float64 {
	return float64(r.num) / float64(r.denom())
}

// String renders r as "n" for integers and "n/d" otherwise.
func (r Rat) String() string {
	if r.denom() == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.denom())
}
