// Package secp256k1 instantiates the generic field/curve machinery with the
// secp256k1 parameters (the Bitcoin curve): y² = x³ + 7 over the 256-bit
// prime field, with the standard generator and its order.
//
// The parameter set is built once, on first use, and validated fast-fail:
// the generator must lie on the curve and multiplying it by its order must
// yield the point at infinity. After that the set is read-only for the
// process lifetime, so all accessors are safe for concurrent use.
package secp256k1

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/tumberger/ecgroup/curve"
	"github.com/tumberger/ecgroup/ff"
	"github.com/tumberger/ecgroup/logger"
)

const (
	pHex  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	gxHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	nHex  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

var (
	initOnce sync.Once

	p, n, gx, gy *big.Int
	params       *curve.Params[ff.Element]
	g            curve.Point[ff.Element]
)

func initParams() {
	p = mustHex(pHex)
	n = mustHex(nHex)
	gx = mustHex(gxHex)
	gy = mustHex(gyHex)

	a := ff.MustNew(new(big.Int), p)
	b := ff.MustNew(big.NewInt(7), p)
	params = curve.NewParams(a, b)

	g = params.Point(ff.MustNew(gx, p), ff.MustNew(gy, p))
	if !g.IsValid() {
		panic("secp256k1: generator is not on the curve")
	}
	if !g.ScalarMul(n).IsInfinity() {
		panic("secp256k1: generator times order is not the identity")
	}

	log := logger.Logger()
	log.Debug().Int("bits", p.BitLen()).Msg("secp256k1 parameters validated")
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("secp256k1: bad hex constant %q", s))
	}
	return v
}

// Params returns the secp256k1 curve parameters.
func Params() *curve.Params[ff.Element] {
	initOnce.Do(initParams)
	return params
}

// G returns the generator point.
func G() curve.Point[ff.Element] {
	initOnce.Do(initParams)
	return g
}

// P returns a copy of the field prime.
func P() *big.Int {
	initOnce.Do(initParams)
	return new(big.Int).Set(p)
}

// N returns a copy of the generator order.
func N() *big.Int {
	initOnce.Do(initParams)
	return new(big.Int).Set(n)
}

// Gx returns a copy of the generator x coordinate.
func Gx() *big.Int {
	initOnce.Do(initParams)
	return new(big.Int).Set(gx)
}

// Gy returns a copy of the generator y coordinate.
func Gy() *big.Int {
	initOnce.Do(initParams)
	return new(big.Int).Set(gy)
}

// A returns the a coefficient (zero) as a field element.
func A() ff.Element {
	initOnce.Do(initParams)
	return params.A()
}

// B returns the b coefficient (seven) as a field element.
func B() ff.Element {
	initOnce.Do(initParams)
	return params.B()
}
