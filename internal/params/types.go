package params

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Parameters bundles all constants needed by the permutation for one state width.
type Parameters struct {
	Width         int
	FullRounds    int
	PartialRounds int

	// RoundConstants holds Width*(FullRounds+PartialRounds) elements,
	// indexed round*Width+j.
	RoundConstants []fr.Element
	// MDS is the Width x Width mixing matrix in row-major order.
	MDS []fr.Element
}
