package curve

import "fmt"

// Params holds the coefficients of a curve y² = x³ + ax + b. Immutable once
// constructed; every point keeps a reference to the Params it was built
// against, and two points combine only if their Params are parameter-equal.
type Params[T Element[T]] struct {
	a, b T
}

// NewParams returns the curve y² = x³ + ax + b.
func NewParams[T Element[T]](a, b T) *Params[T] {
	return &Params[T]{a: a, b: b}
}

// A returns the a coefficient.
func (c *Params[T]) A() T { return c.a }

// B returns the b coefficient.
func (c *Params[T]) B() T { return c.b }

// Equal reports whether o describes the same curve. Equality is on the
// coefficient values, not on identity: two independently constructed Params
// with equal a and b are the same curve.
func (c *Params[T]) Equal(o *Params[T]) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c *Params[T]) Contains(x, y T) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(c.a.Mul(x)).Add(c.b)
	return lhs.Equal(rhs)
}

// Point is the validating point constructor: it returns an affine point when
// (x, y) is on the curve and the Invalid sentinel otherwise. Invalid taints
// every operation it participates in, so a bad input never turns into a
// plausible-looking wrong point.
func (c *Params[T]) Point(x, y T) Point[T] {
	if !c.Contains(x, y) {
		return Point[T]{curve: c, kind: kindInvalid}
	}
	return Point[T]{curve: c, kind: kindAffine, x: x, y: y}
}

// Infinity returns the identity element of the curve group.
func (c *Params[T]) Infinity() Point[T] {
	return Point[T]{curve: c, kind: kindInfinity}
}

func (c *Params[T]) String() string {
	return fmt.Sprintf("y² = x³ + %v·x + %v", c.a, c.b)
}
