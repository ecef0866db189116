// Package curve implements the short Weierstrass group law
//
//	y² = x³ + ax + b
//
// generically over any element type providing field-style arithmetic. The two
// implementations in this module are ff.Element (prime fields, the one that
// matters for secp256k1) and the package's own Int (plain machine integers,
// handy for the small teaching curves where coordinates stay integral).
package curve

// Element is the numeric capability the group law needs from a coordinate
// type: ring arithmetic, division for slope computation, equality, a zero
// test and a way to lift small constants (2, 3) into the same structure as an
// existing value.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Equal(T) bool
	IsZero() bool
	FromInt64(int64) T
}

// Int is a fixed-width Element over int64. Division is exact integer
// division, which suffices on the teaching curves where every chord and
// tangent slope is integral; it is not a field and not suitable for
// cryptographic parameters.
type Int int64

func (a Int) Add(b Int) Int { return a + b }

func (a Int) Sub(b Int) Int { return a - b }

func (a Int) Mul(b Int) Int { return a * b }

func (a Int) Div(b Int) Int { return a / b }

func (a Int) Equal(b Int) bool { return a == b }

func (a Int) IsZero() bool { return a == 0 }

func (a Int) FromInt64(v int64) Int { return Int(v) }
