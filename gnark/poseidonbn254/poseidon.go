// Package poseidonbn254 provides the Poseidon hash as a gnark gadget for
// circuits whose native field is the bn254 scalar field. The constraint system
// mirrors the native permutation round for round.
package poseidonbn254

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/poseidonbn254/internal/params"
)

// circuitPermutation mirrors the native permutation but emits gnark constraints.
type circuitPermutation struct {
	params *params.Parameters
}

// newCircuitPermutation builds a circuit gadget for the given number of inputs.
func newCircuitPermutation(n int) (*circuitPermutation, error) {
	p, err := params.ForInputs(n)
	if err != nil {
		return nil, fmt.Errorf("poseidonbn254: unsupported number of inputs %d, want 1 to %d", n, params.MaxInputs)
	}
	return &circuitPermutation{params: p}, nil
}

// Hash computes the Poseidon digest of the given inputs inside a gnark circuit.
// The capacity slot is fixed to zero; the digest is the first state element.
func Hash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	gadget, err := newCircuitPermutation(len(inputs))
	if err != nil {
		var zero frontend.Variable
		return zero, err
	}
	return gadget.hash(api, inputs)
}

func (p *circuitPermutation) hash(api frontend.API, inputs []frontend.Variable) (frontend.Variable, error) {
	state := make([]frontend.Variable, p.params.Width)
	state[0] = 0
	copy(state[1:], inputs)
	state = p.permute(api, state)
	return state[0], nil
}

func (p *circuitPermutation) permute(api frontend.API, state []frontend.Variable) []frontend.Variable {
	t := p.params.Width
	half := p.params.FullRounds / 2
	rounds := p.params.FullRounds + p.params.PartialRounds

	for r := 0; r < rounds; r++ {
		circuitAddRoundConstants(api, state, p.params.RoundConstants, r, t)
		if r < half || r >= half+p.params.PartialRounds {
			circuitFullSBox(api, state)
		} else {
			state[0] = circuitExp5(api, state[0])
		}
		state = circuitMix(api, state, p.params.MDS, t)
	}
	return state
}

func circuitAddRoundConstants(api frontend.API, state []frontend.Variable, rc []fr.Element, round, width int) {
	offset := round * width
	for i := 0; i < width; i++ {
		state[i] = api.Add(state[i], rc[offset+i])
	}
}

func circuitMix(api frontend.API, state []frontend.Variable, mds []fr.Element, width int) []frontend.Variable {
	out := make([]frontend.Variable, width)
	for i := 0; i < width; i++ {
		offset := i * width
		sum := api.Mul(state[0], mds[offset])
		for j := 1; j < width; j++ {
			sum = api.Add(sum, api.Mul(state[j], mds[offset+j]))
		}
		out[i] = sum
	}
	return out
}

func circuitFullSBox(api frontend.API, state []frontend.Variable) {
	for i := range state {
		state[i] = circuitExp5(api, state[i])
	}
}

func circuitExp5(api frontend.API, v frontend.Variable) frontend.Variable {
	v2 := api.Mul(v, v)
	v4 := api.Mul(v2, v2)
	return api.Mul(v4, v)
}
