// Package poseidonbn254 computes the Poseidon hash over the emulated bn254
// scalar field, for circuits whose native field is a different prime. The
// schedule matches the native implementation; every limb operation goes
// through gnark's emulated-field arithmetic.
package poseidonbn254

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"

	"github.com/vocdoni/poseidonbn254/internal/params"
)

// MaxMultiHashInputs bounds MultiHash.
const MaxMultiHashInputs = 256

// Hash computes the Poseidon digest over emulated bn254 scalar field elements.
// The capacity slot is fixed to zero; the digest is the first state element.
func Hash(api frontend.API, inputs ...emulated.Element[FrParams]) (emulated.Element[FrParams], error) {
	var zero emulated.Element[FrParams]
	p, err := nativeParams(len(inputs))
	if err != nil {
		return zero, fmt.Errorf("poseidonbn254: unsupported number of inputs %d, want 1 to %d", len(inputs), params.MaxInputs)
	}

	field, err := emulated.NewField[FrParams](api)
	if err != nil {
		return zero, err
	}

	state := make([]emulated.Element[FrParams], p.Width)
	state[0] = emulated.ValueOf[FrParams](0)
	copy(state[1:], inputs)

	permute(field, p, state)
	// Ensure canonical output.
	out := field.Reduce(&state[0])
	return *out, nil
}

// MultiHash hashes an arbitrary number of emulated elements (up to
// MaxMultiHashInputs) by chunking with the widest arity (16) and rehashing the
// chunk digests until one remains.
func MultiHash(api frontend.API, inputs ...emulated.Element[FrParams]) (emulated.Element[FrParams], error) {
	var zero emulated.Element[FrParams]
	if len(inputs) == 0 {
		return zero, fmt.Errorf("poseidonbn254: need at least 1 input")
	}
	if len(inputs) > MaxMultiHashInputs {
		return zero, fmt.Errorf("poseidonbn254: too many inputs (%d > %d)", len(inputs), MaxMultiHashInputs)
	}

	current := make([]emulated.Element[FrParams], len(inputs))
	copy(current, inputs)

	for len(current) > params.MaxInputs {
		next := make([]emulated.Element[FrParams], 0, (len(current)+params.MaxInputs-1)/params.MaxInputs)
		for i := 0; i < len(current); i += params.MaxInputs {
			end := min(i+params.MaxInputs, len(current))
			h, err := Hash(api, current[i:end]...)
			if err != nil {
				return zero, err
			}
			next = append(next, h)
		}
		current = next
	}

	return Hash(api, current...)
}

// permute mutates the state in place, mirroring the native round schedule.
func permute(field *emulated.Field[FrParams], p *params.Parameters, state []emulated.Element[FrParams]) {
	ptrState := make([]*emulated.Element[FrParams], len(state))
	for i := range state {
		ptrState[i] = field.NewElement(state[i])
	}

	t := p.Width
	half := p.FullRounds / 2
	rounds := p.FullRounds + p.PartialRounds

	for r := range rounds {
		addRoundConstants(field, ptrState, p.RoundConstants, r, t)
		if r < half || r >= half+p.PartialRounds {
			fullSBox(field, ptrState)
		} else {
			ptrState[0] = exp5(field, ptrState[0])
		}
		ptrState = mixLayer(field, p, ptrState)
	}

	for i := range state {
		state[i] = *ptrState[i]
	}
}

func addRoundConstants(field *emulated.Field[FrParams], state []*emulated.Element[FrParams], rc []fr.Element, round, width int) {
	offset := round * width
	for i := range width {
		c := constElement(field, rc[offset+i])
		state[i] = field.Add(state[i], &c)
	}
}

func mixLayer(field *emulated.Field[FrParams], p *params.Parameters, state []*emulated.Element[FrParams]) []*emulated.Element[FrParams] {
	t := p.Width
	newState := make([]*emulated.Element[FrParams], t)
	for i := range t {
		sum := field.NewElement(emulated.ValueOf[FrParams](0))
		rowOffset := i * t
		for j := range t {
			c := constElement(field, p.MDS[rowOffset+j])
			prod := field.Mul(&c, state[j])
			sum = field.Add(sum, prod)
		}
		newState[i] = sum
	}
	return newState
}

func fullSBox(field *emulated.Field[FrParams], state []*emulated.Element[FrParams]) {
	for i := range state {
		state[i] = exp5(field, state[i])
	}
}

func exp5(field *emulated.Field[FrParams], x *emulated.Element[FrParams]) *emulated.Element[FrParams] {
	x2 := field.Mul(x, x)
	x4 := field.Mul(x2, x2)
	return field.Mul(x4, x)
}
