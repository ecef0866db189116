// ecdemo constructs the secp256k1 generator through the validating point
// constructor and prints it.
package main

import (
	"github.com/tumberger/ecgroup/ff"
	"github.com/tumberger/ecgroup/logger"
	"github.com/tumberger/ecgroup/secp256k1"
)

func main() {
	log := logger.Logger()

	g := secp256k1.Params().Point(
		ff.MustNew(secp256k1.Gx(), secp256k1.P()),
		ff.MustNew(secp256k1.Gy(), secp256k1.P()),
	)

	x, y, _ := g.XY()
	log.Info().
		Str("x", x.Num().Text(16)).
		Str("y", y.Num().Text(16)).
		Str("order", secp256k1.N().Text(16)).
		Msg("secp256k1 generator")
}
