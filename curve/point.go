package curve

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrCurveMismatch is the panic value when points from parameter-distinct
	// curves are combined. A mismatch is an internal caller defect, so the
	// operation aborts instead of returning a value.
	ErrCurveMismatch = errors.New("curve: points belong to different curves")

	// ErrNegativeScalar reports a negative scalar passed to ScalarMul.
	ErrNegativeScalar = errors.New("curve: negative scalar")
)

type pointKind uint8

const (
	kindInfinity pointKind = iota
	kindAffine
	kindInvalid
)

// Point is an element of the curve group: the point at infinity, an affine
// coordinate pair on the curve, or the Invalid sentinel produced by the
// validating constructor. Points are immutable values.
type Point[T Element[T]] struct {
	curve *Params[T]
	kind  pointKind
	x, y  T
}

// Curve returns the parameters the point was constructed against.
func (p Point[T]) Curve() *Params[T] { return p.curve }

// IsInfinity reports whether p is the group identity.
func (p Point[T]) IsInfinity() bool { return p.kind == kindInfinity }

// IsValid reports whether p is not the Invalid sentinel.
func (p Point[T]) IsValid() bool { return p.kind != kindInvalid }

// XY returns the affine coordinates. ok is false for the point at infinity
// and for Invalid, which have none.
func (p Point[T]) XY() (x, y T, ok bool) {
	if p.kind != kindAffine {
		return x, y, false
	}
	return p.x, p.y, true
}

// Equal reports whether q is the same point on the same curve. Points on
// parameter-distinct curves are never equal; two Invalid sentinels on the
// same curve are.
func (p Point[T]) Equal(q Point[T]) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.kind != q.kind {
		return false
	}
	if p.kind != kindAffine {
		return true
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p, the reflection across the x axis. Infinity and Invalid are
// their own negation.
func (p Point[T]) Neg() Point[T] {
	if p.kind != kindAffine {
		return p
	}
	zero := p.y.FromInt64(0)
	return Point[T]{curve: p.curve, kind: kindAffine, x: p.x, y: zero.Sub(p.y)}
}

// Add returns p + q under the group law. Combining points from
// parameter-distinct curves panics with ErrCurveMismatch; an Invalid operand
// taints the result.
func (p Point[T]) Add(q Point[T]) Point[T] {
	if !p.curve.Equal(q.curve) {
		panic(ErrCurveMismatch)
	}

	if p.kind == kindInvalid || q.kind == kindInvalid {
		return Point[T]{curve: p.curve, kind: kindInvalid}
	}

	// Infinity is the additive identity.
	if p.kind == kindInfinity {
		return q
	}
	if q.kind == kindInfinity {
		return p
	}

	// Additive inverses: same x, different y.
	if p.x.Equal(q.x) && !p.y.Equal(q.y) {
		return p.curve.Infinity()
	}

	// Slope of the line through p and q: the tangent when p == q, the chord
	// otherwise. A point with y == 0 has a vertical tangent, so doubling it
	// lands at infinity.
	var s T
	if p.x.Equal(q.x) && p.y.Equal(q.y) {
		if p.y.IsZero() {
			return p.curve.Infinity()
		}
		three := p.x.FromInt64(3)
		two := p.x.FromInt64(2)
		s = three.Mul(p.x).Mul(p.x).Add(p.curve.a).Div(two.Mul(p.y))
	} else {
		s = q.y.Sub(p.y).Div(q.x.Sub(p.x))
	}

	// x3 = s² - x1 - x2 ; y3 = s(x1 - x3) - y1
	x := s.Mul(s).Sub(p.x).Sub(q.x)
	y := s.Mul(p.x.Sub(x)).Sub(p.y)

	return Point[T]{curve: p.curve, kind: kindAffine, x: x, y: y}
}

// ScalarMul returns k·p by right-to-left double-and-add, mirroring the
// square-and-multiply ladder of modular exponentiation: one doubling per bit
// of k, one addition per set bit. k must be non-negative; ScalarMul panics
// with ErrNegativeScalar otherwise. 0·p is Infinity for every valid p, and an
// Invalid p stays Invalid.
func (p Point[T]) ScalarMul(k *big.Int) Point[T] {
	if k.Sign() < 0 {
		panic(ErrNegativeScalar)
	}
	if p.kind == kindInvalid {
		return p
	}

	res := p.curve.Infinity()
	acc := p
	for i, n := 0, k.BitLen(); i < n; i++ {
		if k.Bit(i) == 1 {
			res = res.Add(acc)
		}
		acc = acc.Add(acc)
	}
	return res
}

func (p Point[T]) String() string {
	switch p.kind {
	case kindInfinity:
		return "Infinity"
	case kindInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("(%v, %v)", p.x, p.y)
	}
}
