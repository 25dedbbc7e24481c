package params

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// MaxInputs is the largest supported hash arity. The state width is arity+1:
// one capacity slot plus one slot per message element.
const MaxInputs = 16

// fullRounds is shared by every width; partial round counts are keyed width-2.
const fullRounds = 8

var partialRounds = [MaxInputs]int{56, 57, 56, 60, 60, 63, 64, 63, 60, 66, 60, 65, 70, 60, 64, 68}

// Embedded decimal tables, one pair per state width (see constants_w*.go).
var (
	rcRaw = [MaxInputs][]string{
		rcWidth2, rcWidth3, rcWidth4, rcWidth5,
		rcWidth6, rcWidth7, rcWidth8, rcWidth9,
		rcWidth10, rcWidth11, rcWidth12, rcWidth13,
		rcWidth14, rcWidth15, rcWidth16, rcWidth17,
	}
	mdsRaw = [MaxInputs][]string{
		mdsWidth2, mdsWidth3, mdsWidth4, mdsWidth5,
		mdsWidth6, mdsWidth7, mdsWidth8, mdsWidth9,
		mdsWidth10, mdsWidth11, mdsWidth12, mdsWidth13,
		mdsWidth14, mdsWidth15, mdsWidth16, mdsWidth17,
	}
)

var (
	buildOnce [MaxInputs]sync.Once
	built     [MaxInputs]*Parameters
)

// ForInputs returns the immutable parameter set for hashing n field elements.
// Tables are parsed from their embedded decimal form on first use, once per
// width; concurrent first access is safe.
func ForInputs(n int) (*Parameters, error) {
	if n < 1 || n > MaxInputs {
		return nil, fmt.Errorf("poseidonbn254: unsupported number of inputs %d", n)
	}
	idx := n - 1
	buildOnce[idx].Do(func() { built[idx] = build(n + 1) })
	return built[idx], nil
}

func build(width int) *Parameters {
	p := &Parameters{
		Width:          width,
		FullRounds:     fullRounds,
		PartialRounds:  partialRounds[width-2],
		RoundConstants: parseElements(rcRaw[width-2]),
		MDS:            parseElements(mdsRaw[width-2]),
	}
	// The embedded tables are static; a shape failure here is a build defect,
	// not a caller error.
	if err := Validate(p); err != nil {
		panic(err)
	}
	return p
}

func parseElements(raw []string) []fr.Element {
	out := make([]fr.Element, len(raw))
	for i, s := range raw {
		if _, err := out[i].SetString(s); err != nil {
			panic(fmt.Sprintf("poseidonbn254: malformed embedded constant %q: %v", s, err))
		}
	}
	return out
}
