// Package ff implements finite-field arithmetic over an arbitrary modulus.
//
// An Element is an immutable residue class 0 ≤ num < modulus. All operations
// return a fresh Element and never mutate their operands, so values are safe
// to share between goroutines. Division relies on Fermat's little theorem and
// is therefore only meaningful when the modulus is prime; the package does not
// verify primality.
package ff

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidResidue is returned when constructing an element whose value
	// falls outside [0, modulus).
	ErrInvalidResidue = errors.New("ff: residue out of field range")

	// ErrModulusMismatch is the panic value when two elements from different
	// fields are combined. This is a caller bug, not recoverable input.
	ErrModulusMismatch = errors.New("ff: elements have different moduli")

	// ErrDivisionByZero reports inversion of the zero element.
	ErrDivisionByZero = errors.New("ff: division by zero element")

	// ErrNegativeExponent reports a negative exponent passed to Exp.
	ErrNegativeExponent = errors.New("ff: negative exponent")
)

// Element is a residue num modulo modulus.
//
// The zero value of Element is not usable; construct elements with New,
// MustNew or by deriving from an existing element (FromInt64, arithmetic).
type Element struct {
	num     *big.Int
	modulus *big.Int
}

// New returns the element num mod modulus. num must already be reduced:
// it fails with ErrInvalidResidue if num < 0 or num >= modulus, and if
// modulus < 2 (no residue ring there to speak of).
func New(num, modulus *big.Int) (Element, error) {
	if modulus.Cmp(two) < 0 {
		return Element{}, fmt.Errorf("%w: modulus %s < 2", ErrInvalidResidue, modulus)
	}
	if num.Sign() < 0 || num.Cmp(modulus) >= 0 {
		return Element{}, fmt.Errorf("%w: %s not in [0, %s)", ErrInvalidResidue, num, modulus)
	}
	return Element{
		num:     new(big.Int).Set(num),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// MustNew is New, panicking on error. Reserved for constants and tests.
func MustNew(num, modulus *big.Int) Element {
	e, err := New(num, modulus)
	if err != nil {
		panic(err)
	}
	return e
}

// NewInt64 is a convenience constructor over small values.
func NewInt64(num, modulus int64) (Element, error) {
	return New(big.NewInt(num), big.NewInt(modulus))
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Num returns a copy of the residue.
func (e Element) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Modulus returns a copy of the modulus.
func (e Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// IsZero reports whether e is the additive identity of its field.
func (e Element) IsZero() bool {
	return e.num.Sign() == 0
}

// Equal reports whether o is the same residue in the same field. Elements of
// different fields are never equal.
func (e Element) Equal(o Element) bool {
	return e.modulus.Cmp(o.modulus) == 0 && e.num.Cmp(o.num) == 0
}

// FromInt64 lifts v into e's field, reducing mod the modulus. Negative v is
// allowed and wraps around, so e.FromInt64(-1) is the largest residue.
func (e Element) FromInt64(v int64) Element {
	n := big.NewInt(v)
	n.Mod(n, e.modulus)
	return Element{num: n, modulus: e.modulus}
}

func (e Element) checkModulus(o Element) {
	if e.modulus.Cmp(o.modulus) != 0 {
		panic(ErrModulusMismatch)
	}
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	e.checkModulus(o)
	n := new(big.Int).Add(e.num, o.num)
	n.Mod(n, e.modulus)
	return Element{num: n, modulus: e.modulus}
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	e.checkModulus(o)
	n := new(big.Int).Sub(e.num, o.num)
	n.Mod(n, e.modulus)
	return Element{num: n, modulus: e.modulus}
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	e.checkModulus(o)
	n := new(big.Int).Mul(e.num, o.num)
	n.Mod(n, e.modulus)
	return Element{num: n, modulus: e.modulus}
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.num.Sign() == 0 {
		return e
	}
	n := new(big.Int).Sub(e.modulus, e.num)
	return Element{num: n, modulus: e.modulus}
}

// Exp returns e^k by square-and-multiply, in O(bitlen k) field
// multiplications. By convention e^0 == 1 for every e, including zero.
// k must be non-negative; Exp panics with ErrNegativeExponent otherwise.
func (e Element) Exp(k *big.Int) Element {
	if k.Sign() < 0 {
		panic(ErrNegativeExponent)
	}
	if k.Sign() == 0 {
		return Element{num: big.NewInt(1), modulus: e.modulus}
	}
	if e.num.Sign() == 0 {
		return Element{num: new(big.Int), modulus: e.modulus}
	}
	if e.num.Cmp(one) == 0 {
		return e
	}

	base := new(big.Int).Set(e.num)
	exp := new(big.Int).Set(k)
	result := big.NewInt(1)
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result.Mul(result, base)
			result.Mod(result, e.modulus)
		}
		base.Mul(base, base)
		base.Mod(base, e.modulus)
		exp.Rsh(exp, 1)
	}
	return Element{num: result, modulus: e.modulus}
}

// Inverse returns e^-1 using Fermat's little theorem: for prime modulus p,
// e^(p-2) is the multiplicative inverse of nonzero e. The caller is
// responsible for the modulus being prime. Inverting the zero element fails
// with ErrDivisionByZero.
func (e Element) Inverse() (Element, error) {
	if e.num.Sign() == 0 {
		return Element{}, ErrDivisionByZero
	}
	exp := new(big.Int).Sub(e.modulus, two)
	return e.Exp(exp), nil
}

// Div returns e / o, computed as e * o^-1. A zero divisor panics with
// ErrDivisionByZero; the group law never divides by zero, so reaching the
// panic means a caller bug.
func (e Element) Div(o Element) Element {
	e.checkModulus(o)
	inv, err := o.Inverse()
	if err != nil {
		panic(err)
	}
	return e.Mul(inv)
}

func (e Element) String() string {
	return fmt.Sprintf("%s mod %s", e.num, e.modulus)
}
