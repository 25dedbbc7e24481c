// Package poseidonbn254 implements the Poseidon hash over the bn254 scalar
// field with the canonical circomlib parameter set (x^5 S-box, 8 full rounds,
// widths 2 through 17). Digests interoperate with circom verifiers and other
// implementations of the same parameter set.
package poseidonbn254

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/poseidonbn254/internal/params"
)

const (
	// MaxInputs is the largest number of field elements a single Hash call accepts.
	MaxInputs = params.MaxInputs
	// maxWidth is the widest permutation state: MaxInputs message slots plus the capacity slot.
	maxWidth = MaxInputs + 1
	// MaxMultiHashInputs bounds MultiHash.
	MaxMultiHashInputs = 256
)

var (
	// ErrInvalidInputCount reports a hash called with zero inputs or more than the supported maximum.
	ErrInvalidInputCount = errors.New("poseidonbn254: invalid number of inputs")
	// ErrEmptyInput reports a byte-oriented entry point called with no inputs.
	ErrEmptyInput = errors.New("poseidonbn254: empty input")
)

// permutation binds the parameter set for one state width.
type permutation struct {
	params *params.Parameters
}

// newPermutation instantiates a permutation for the given number of message
// elements. The state width is n+1; the extra slot is the capacity element.
func newPermutation(n int) (*permutation, error) {
	p, err := params.ForInputs(n)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d, want 1 to %d", ErrInvalidInputCount, n, MaxInputs)
	}
	return &permutation{params: p}, nil
}

// Hash computes the Poseidon digest of 1 to MaxInputs field elements.
// The capacity slot is fixed to zero and the digest is the first state element
// after the permutation.
func Hash(inputs ...fr.Element) (fr.Element, error) {
	perm, err := newPermutation(len(inputs))
	if err != nil {
		return fr.Element{}, err
	}

	var buf [maxWidth]fr.Element
	state := buf[:perm.params.Width]
	copy(state[1:], inputs)

	perm.permute(state)
	return state[0], nil
}

// MultiHash hashes an arbitrary-length list of field elements by chunking with
// the widest arity (16) and rehashing the chunk digests until one remains.
// Lists of at most MaxInputs elements hash exactly like Hash. Supports up to
// MaxMultiHashInputs inputs.
func MultiHash(inputs ...fr.Element) (fr.Element, error) {
	if len(inputs) == 0 {
		return fr.Element{}, fmt.Errorf("%w: got 0, want at least 1", ErrInvalidInputCount)
	}
	if len(inputs) > MaxMultiHashInputs {
		return fr.Element{}, fmt.Errorf("%w: got %d, want at most %d", ErrInvalidInputCount, len(inputs), MaxMultiHashInputs)
	}

	current := make([]fr.Element, len(inputs))
	copy(current, inputs)

	for len(current) > MaxInputs {
		next := make([]fr.Element, 0, (len(current)+MaxInputs-1)/MaxInputs)
		for i := 0; i < len(current); i += MaxInputs {
			end := i + MaxInputs
			if end > len(current) {
				end = len(current)
			}
			h, err := Hash(current[i:end]...)
			if err != nil {
				return fr.Element{}, err
			}
			next = append(next, h)
		}
		current = next
	}

	return Hash(current...)
}

// permute mutates the state in place. Round i adds the round constants, applies
// the x^5 S-box (to every element in the full bands, to state[0] only in the
// partial band) and mixes the state through the MDS matrix.
func (p *permutation) permute(state []fr.Element) {
	t := p.params.Width
	half := p.params.FullRounds / 2
	rounds := p.params.FullRounds + p.params.PartialRounds

	var buf [maxWidth]fr.Element
	scratch := buf[:t]

	for r := 0; r < rounds; r++ {
		addRoundConstants(state, p.params.RoundConstants, r, t)
		if r < half || r >= half+p.params.PartialRounds {
			fullSBox(state)
		} else {
			partialSBox(state)
		}
		mixLayer(state, scratch, p.params.MDS, t)
	}
}

func addRoundConstants(state, rc []fr.Element, round, width int) {
	offset := round * width
	for i := 0; i < width; i++ {
		state[i].Add(&state[i], &rc[offset+i])
	}
}

// mixLayer replaces state with MDS*state. The scratch buffer keeps the full
// read pass ahead of any write; state is only overwritten at the end.
func mixLayer(state, scratch, mds []fr.Element, width int) {
	var prod fr.Element
	for i := 0; i < width; i++ {
		row := mds[i*width : (i+1)*width]
		var sum fr.Element
		for j := 0; j < width; j++ {
			prod.Mul(&row[j], &state[j])
			sum.Add(&sum, &prod)
		}
		scratch[i] = sum
	}
	copy(state, scratch)
}

func fullSBox(state []fr.Element) {
	for i := range state {
		exp5(&state[i])
	}
}

func partialSBox(state []fr.Element) {
	exp5(&state[0])
}

// exp5 raises x to the 5th power: two squarings, then x^4 * x.
func exp5(x *fr.Element) {
	var x2, x4 fr.Element
	x2.Square(x)
	x4.Square(&x2)
	x.Mul(&x4, x)
}
