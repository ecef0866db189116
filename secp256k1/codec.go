package secp256k1

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/tumberger/ecgroup/curve"
	"github.com/tumberger/ecgroup/ff"
)

// Point wire format: a small CBOR map with integer keys. Coordinates are
// big-endian byte strings and are absent for the point at infinity.
type pointWire struct {
	Infinity bool   `cbor:"1,keyasint,omitempty"`
	X        []byte `cbor:"2,keyasint,omitempty"`
	Y        []byte `cbor:"3,keyasint,omitempty"`
}

var (
	// ErrMarshalInvalid reports an attempt to serialize the Invalid sentinel.
	ErrMarshalInvalid = errors.New("secp256k1: cannot marshal invalid point")

	// ErrNotOnCurve reports decoded coordinates that fail the curve
	// membership check or fall outside the field.
	ErrNotOnCurve = errors.New("secp256k1: decoded point is not on the curve")
)

// MarshalPoint encodes a point on the secp256k1 curve as CBOR. The Invalid
// sentinel has no wire form.
func MarshalPoint(pt curve.Point[ff.Element]) ([]byte, error) {
	if !pt.IsValid() {
		return nil, ErrMarshalInvalid
	}
	x, y, ok := pt.XY()
	if !ok {
		return cbor.Marshal(pointWire{Infinity: true})
	}
	return cbor.Marshal(pointWire{X: x.Num().Bytes(), Y: y.Num().Bytes()})
}

// UnmarshalPoint decodes a point produced by MarshalPoint, re-running the
// curve membership check: coordinates that are out of field range or off the
// curve fail with ErrNotOnCurve rather than producing a tainted point.
func UnmarshalPoint(data []byte) (curve.Point[ff.Element], error) {
	initOnce.Do(initParams)

	var w pointWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return curve.Point[ff.Element]{}, fmt.Errorf("secp256k1: decode point: %w", err)
	}
	if w.Infinity {
		return params.Infinity(), nil
	}

	x, err := ff.New(new(big.Int).SetBytes(w.X), p)
	if err != nil {
		return curve.Point[ff.Element]{}, fmt.Errorf("%w: %v", ErrNotOnCurve, err)
	}
	y, err := ff.New(new(big.Int).SetBytes(w.Y), p)
	if err != nil {
		return curve.Point[ff.Element]{}, fmt.Errorf("%w: %v", ErrNotOnCurve, err)
	}

	pt := params.Point(x, y)
	if !pt.IsValid() {
		return curve.Point[ff.Element]{}, ErrNotOnCurve
	}
	return pt, nil
}
