package poseidonbn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"

	"github.com/vocdoni/poseidonbn254/internal/params"
)

// FrParams defines the emulated parameters for the bn254 scalar field.
type FrParams = emparams.BN254Fr

func constElement(f *emulated.Field[FrParams], fe fr.Element) emulated.Element[FrParams] {
	return *f.NewElement(fe.BigInt(new(big.Int)))
}

// nativeParams resolves the native parameter set for the given number of inputs.
func nativeParams(n int) (*params.Parameters, error) {
	return params.ForInputs(n)
}
