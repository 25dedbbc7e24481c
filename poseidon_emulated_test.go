package poseidonbn254

import (
	"math/big"
	"os"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/test"
	"github.com/rs/zerolog"

	emposeidon "github.com/vocdoni/poseidonbn254/gnark/emulated/poseidonbn254"
	"github.com/vocdoni/poseidonbn254/internal/params"
)

type emuSmallCircuit struct {
	Inputs   [2]emulated.Element[emposeidon.FrParams]
	Expected emulated.Element[emposeidon.FrParams] `gnark:",public"`
}

func (c *emuSmallCircuit) Define(api frontend.API) error {
	field, err := emulated.NewField[emposeidon.FrParams](api)
	if err != nil {
		return err
	}
	out, err := emposeidon.Hash(api, c.Inputs[0], c.Inputs[1])
	if err != nil {
		return err
	}
	field.AssertIsEqual(&out, &c.Expected)
	return nil
}

type emuSizedCircuit struct {
	Inputs   []emulated.Element[emposeidon.FrParams]
	Expected emulated.Element[emposeidon.FrParams] `gnark:",public"`
}

func (c *emuSizedCircuit) Define(api frontend.API) error {
	field, err := emulated.NewField[emposeidon.FrParams](api)
	if err != nil {
		return err
	}
	out, err := emposeidon.MultiHash(api, c.Inputs...)
	if err != nil {
		return err
	}
	field.AssertIsEqual(&out, &c.Expected)
	return nil
}

func TestEmulatedHashMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)
	var a, b fr.Element
	a.SetUint64(1)
	b.SetUint64(2)
	native, err := Hash(a, b)
	if err != nil {
		t.Fatal(err)
	}

	ref, err := bigIntHash(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var refEl fr.Element
	refEl.SetBigInt(ref)
	if !native.Equal(&refEl) {
		t.Fatalf("native vs bigint mismatch: %s vs %s", native.String(), refEl.String())
	}

	witness := emuSmallCircuit{
		Inputs:   [2]emulated.Element[emposeidon.FrParams]{valueOf(a), valueOf(b)},
		Expected: valueOf(native),
	}

	assert.ProverSucceeded(
		&emuSmallCircuit{},
		&witness,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestBigIntReferenceMatchesNative(t *testing.T) {
	for _, n := range []int{1, 2, 6, 16} {
		in := seqElements(n)
		native, err := Hash(in...)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		ref, err := bigIntHash(in...)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		var refEl fr.Element
		refEl.SetBigInt(ref)
		if !native.Equal(&refEl) {
			t.Fatalf("n=%d native vs bigint mismatch: %s vs %s", n, native.String(), refEl.String())
		}
	}
}

func TestEmulatedMultiHashChain(t *testing.T) {
	t.Skip("expensive: several million emulated constraints")
	assert := test.NewAssert(t)

	inputs := seqElements(17)
	expected, err := MultiHash(inputs...)
	if err != nil {
		t.Fatal(err)
	}

	witness := emuSizedCircuit{
		Inputs:   make([]emulated.Element[emposeidon.FrParams], len(inputs)),
		Expected: valueOf(expected),
	}
	for i, v := range inputs {
		witness.Inputs[i] = valueOf(v)
	}

	ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, &emuSizedCircuit{
		Inputs: make([]emulated.Element[emposeidon.FrParams], len(inputs)),
	})
	if err != nil {
		t.Fatalf("compile n=%d: %v", len(inputs), err)
	}
	t.Logf("emulated multihash constraints n=%d (bls12-381 host, r1cs): %d", len(inputs), ccs.GetNbConstraints())

	assert.ProverSucceeded(
		&emuSizedCircuit{Inputs: make([]emulated.Element[emposeidon.FrParams], len(inputs))},
		&witness,
		test.WithCurves(ecc.BLS12_381),
		test.WithBackends(backend.GROTH16),
	)
}

func valueOf(e fr.Element) emulated.Element[emposeidon.FrParams] {
	return emulated.ValueOf[emposeidon.FrParams](e.BigInt(new(big.Int)))
}

// Reference bigint implementation to sanity-check constants and schedule.
func bigIntHash(inputs ...fr.Element) (*big.Int, error) {
	p, err := params.ForInputs(len(inputs))
	if err != nil {
		return nil, err
	}
	mod := fr.Modulus()
	t := p.Width
	five := big.NewInt(5)

	state := make([]*big.Int, t)
	state[0] = new(big.Int)
	for i := range inputs {
		state[i+1] = inputs[i].BigInt(new(big.Int))
	}
	rc := elemsToBig(p.RoundConstants)
	mds := elemsToBig(p.MDS)

	half := p.FullRounds / 2
	rounds := p.FullRounds + p.PartialRounds
	for r := 0; r < rounds; r++ {
		offset := r * t
		for i := 0; i < t; i++ {
			state[i].Add(state[i], rc[offset+i]).Mod(state[i], mod)
		}
		if r < half || r >= half+p.PartialRounds {
			for i := range state {
				state[i].Exp(state[i], five, mod)
			}
		} else {
			state[0].Exp(state[0], five, mod)
		}
		next := make([]*big.Int, t)
		for i := 0; i < t; i++ {
			sum := new(big.Int)
			for j := 0; j < t; j++ {
				sum.Add(sum, new(big.Int).Mul(mds[i*t+j], state[j]))
			}
			next[i] = sum.Mod(sum, mod)
		}
		state = next
	}

	return new(big.Int).Set(state[0]), nil
}

func elemsToBig(es []fr.Element) []*big.Int {
	out := make([]*big.Int, len(es))
	for i := range es {
		out[i] = es[i].BigInt(new(big.Int))
	}
	return out
}

// Debug circuit to inspect limb outputs from the emulated poseidon.
type emuDebugCircuit struct {
	Inputs [2]emulated.Element[emposeidon.FrParams]
}

func (c *emuDebugCircuit) Define(api frontend.API) error {
	out, err := emposeidon.Hash(api, c.Inputs[0], c.Inputs[1])
	if err != nil {
		return err
	}
	for i, limb := range out.Limbs {
		api.Println("out limb", i, limb)
	}
	return nil
}

func TestDebugEmulatedOutput(t *testing.T) {
	t.Skip("debug")
	var a, b fr.Element
	a.SetUint64(1)
	b.SetUint64(2)

	ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, &emuDebugCircuit{})
	if err != nil {
		t.Fatalf("compile debug: %v", err)
	}
	witness := &emuDebugCircuit{
		Inputs: [2]emulated.Element[emposeidon.FrParams]{valueOf(a), valueOf(b)},
	}
	w, err := frontend.NewWitness(witness, ecc.BLS12_381.ScalarField())
	if err != nil {
		t.Fatalf("witness: %v", err)
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(zerolog.DebugLevel)
	if _, err := ccs.Solve(w, solver.WithLogger(zlog)); err != nil {
		t.Fatalf("solve debug: %v", err)
	}
}
