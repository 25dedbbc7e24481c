package poseidonbn254

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	iden3poseidon "github.com/iden3/go-iden3-crypto/poseidon"

	gposeidon "github.com/vocdoni/poseidonbn254/gnark/poseidonbn254"
)

func mustElement(t *testing.T, s string) fr.Element {
	t.Helper()
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		t.Fatalf("parse element: %v", err)
	}
	return e
}

func uintElements(vs ...uint64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i].SetUint64(v)
	}
	return out
}

// seqElements returns the elements 1..n.
func seqElements(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetUint64(uint64(i + 1))
	}
	return out
}

func TestCircomlibVectors(t *testing.T) {
	cases := []struct {
		name   string
		inputs []uint64
		want   string
	}{
		{"one", []uint64{1}, "18586133768512220936620570745912940619677854269274689475585506675881198879027"},
		{"two", []uint64{1, 2}, "7853200120776062878684798364095072458815029376092732009249414926327459813530"},
		{"two-padded-5", []uint64{1, 2, 0, 0, 0}, "1018317224307729531995786483840663576608797660851238720571059489595066344487"},
		{"two-padded-6", []uint64{1, 2, 0, 0, 0, 0}, "15336558801450556532856248569924170992202208561737609669134139141992924267169"},
		{"pair-padded-5", []uint64{3, 4, 0, 0, 0}, "5811595552068139067952687508729883632420015185677766880877743348592482390548"},
		{"pair-padded-6", []uint64{3, 4, 0, 0, 0, 0}, "12263118664590987767234828103155242843640892839966517009184493198782366909018"},
		{"six", []uint64{1, 2, 3, 4, 5, 6}, "20400040500897583745843009878988256314335038853985262692600694741116813247201"},
		{"fourteen", []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, "8354478399926161176778659061636406690034081872658507739535256090879947077494"},
		{"nine-padded-14", []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0, 0, 0, 0}, "5540388656744764564518487011617040650780060800286365721923524861648744699539"},
		{"nine-padded-16", []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0, 0, 0, 0, 0, 0}, "11882816200654282475720830292386643970958445617880627439994635298904836126497"},
		{"sixteen", []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, "9989051620750914585850546081941653841776809718687451684622678807385399211877"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := mustElement(t, tc.want)
			got, err := Hash(uintElements(tc.inputs...)...)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(&want) {
				t.Fatalf("hash mismatch\nexpected %s\ngot      %s", want.String(), got.String())
			}
		})
	}
}

func TestFixedArityWrappers(t *testing.T) {
	in := seqElements(16)

	out1, err := Hash1(in[0])
	if err != nil {
		t.Fatal(err)
	}
	want1 := mustElement(t, "18586133768512220936620570745912940619677854269274689475585506675881198879027")
	if !out1.Equal(&want1) {
		t.Fatalf("hash1 mismatch\nexpected %s\ngot      %s", want1.String(), out1.String())
	}

	out2, err := Hash2(in[0], in[1])
	if err != nil {
		t.Fatal(err)
	}
	want2 := mustElement(t, "7853200120776062878684798364095072458815029376092732009249414926327459813530")
	if !out2.Equal(&want2) {
		t.Fatalf("hash2 mismatch\nexpected %s\ngot      %s", want2.String(), out2.String())
	}

	out6, err := Hash6(in[0], in[1], in[2], in[3], in[4], in[5])
	if err != nil {
		t.Fatal(err)
	}
	want6 := mustElement(t, "20400040500897583745843009878988256314335038853985262692600694741116813247201")
	if !out6.Equal(&want6) {
		t.Fatalf("hash6 mismatch\nexpected %s\ngot      %s", want6.String(), out6.String())
	}

	out16, err := Hash16(
		in[0], in[1], in[2], in[3], in[4], in[5], in[6], in[7],
		in[8], in[9], in[10], in[11], in[12], in[13], in[14], in[15],
	)
	if err != nil {
		t.Fatal(err)
	}
	want16 := mustElement(t, "9989051620750914585850546081941653841776809718687451684622678807385399211877")
	if !out16.Equal(&want16) {
		t.Fatalf("hash16 mismatch\nexpected %s\ngot      %s", want16.String(), out16.String())
	}

	out9, err := Hash9(in[0], in[1], in[2], in[3], in[4], in[5], in[6], in[7], in[8])
	if err != nil {
		t.Fatal(err)
	}
	direct9, err := Hash(in[:9]...)
	if err != nil {
		t.Fatal(err)
	}
	if !out9.Equal(&direct9) {
		t.Fatalf("hash9 wrapper disagrees with Hash: %s vs %s", out9.String(), direct9.String())
	}
}

func TestHashProperties(t *testing.T) {
	a := mustElement(t, "12345678901234567890123456789012345678901234567890")
	b := mustElement(t, "98765432109876543210987654321098765432109876543210")

	first, err := Hash(a, b)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Hash(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(&second) {
		t.Fatalf("hash not deterministic: %s vs %s", first.String(), second.String())
	}

	swapped, err := Hash(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if first.Equal(&swapped) {
		t.Fatalf("hash insensitive to input order: %s", first.String())
	}

	var one, aPlus fr.Element
	one.SetOne()
	aPlus.Add(&a, &one)
	bumped, err := Hash(aPlus, b)
	if err != nil {
		t.Fatal(err)
	}
	if first.Equal(&bumped) {
		t.Fatalf("single-element change collided: %s", first.String())
	}

	ha, err := Hash(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := Hash(b)
	if err != nil {
		t.Fatal(err)
	}
	if ha.Equal(&hb) {
		t.Fatalf("distinct single inputs collided: %s", ha.String())
	}
}

func TestArityBounds(t *testing.T) {
	if _, err := Hash(); !errors.Is(err, ErrInvalidInputCount) {
		t.Fatalf("empty input: expected ErrInvalidInputCount, got %v", err)
	}
	if _, err := Hash(seqElements(17)...); !errors.Is(err, ErrInvalidInputCount) {
		t.Fatalf("17 inputs: expected ErrInvalidInputCount, got %v", err)
	}
	if _, err := Hash(seqElements(16)...); err != nil {
		t.Fatalf("16 inputs: %v", err)
	}

	if _, err := MultiHash(); !errors.Is(err, ErrInvalidInputCount) {
		t.Fatalf("empty multihash: expected ErrInvalidInputCount, got %v", err)
	}
	if _, err := MultiHash(seqElements(MaxMultiHashInputs + 1)...); !errors.Is(err, ErrInvalidInputCount) {
		t.Fatalf("257 inputs: expected ErrInvalidInputCount, got %v", err)
	}
	if _, err := MultiHash(seqElements(MaxMultiHashInputs)...); err != nil {
		t.Fatalf("256 inputs: %v", err)
	}
}

func TestMultiHash(t *testing.T) {
	// Lists of at most 16 elements hash exactly like Hash.
	for _, n := range []int{1, 5, 16} {
		in := seqElements(n)
		direct, err := Hash(in...)
		if err != nil {
			t.Fatal(err)
		}
		multi, err := MultiHash(in...)
		if err != nil {
			t.Fatal(err)
		}
		if !direct.Equal(&multi) {
			t.Fatalf("multihash n=%d disagrees with Hash: %s vs %s", n, multi.String(), direct.String())
		}
	}

	// 17 elements: every chunk is hashed, the short tail included, then the digests.
	in := seqElements(17)
	head, err := Hash(in[:16]...)
	if err != nil {
		t.Fatal(err)
	}
	tail, err := Hash(in[16])
	if err != nil {
		t.Fatal(err)
	}
	want, err := Hash(head, tail)
	if err != nil {
		t.Fatal(err)
	}
	got, err := MultiHash(in...)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(&want) {
		t.Fatalf("multihash composition mismatch\nexpected %s\ngot      %s", want.String(), got.String())
	}

	// Pinned digests across chunking depths.
	cases := []struct {
		n    int
		want string
	}{
		{17, "8770585823063767024216894608354098830177643380596531891106165958687580947979"},
		{32, "19353080135480011893679794274332629007458714926862766734381587278690755321321"},
		{100, "21335447287039932140950456492022481317296972247540974133033147919228326506701"},
		{256, "13016222415369343325259815128341219454869416650015354579286108133977873877147"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("size-%d", tc.n), func(t *testing.T) {
			want := mustElement(t, tc.want)
			got, err := MultiHash(seqElements(tc.n)...)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(&want) {
				t.Fatalf("multihash mismatch\nexpected %s\ngot      %s", want.String(), got.String())
			}
		})
	}
}

// go-iden3-crypto implements the same circomlib parameter set with the
// optimized round schedule; both paths must produce byte-identical digests.
func TestMatchesGoIden3(t *testing.T) {
	for n := 1; n <= MaxInputs; n++ {
		in := seqElements(n)
		ours, err := Hash(in...)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		bigs := make([]*big.Int, n)
		for i := range bigs {
			bigs[i] = in[i].BigInt(new(big.Int))
		}
		theirs, err := iden3poseidon.Hash(bigs)
		if err != nil {
			t.Fatalf("go-iden3-crypto n=%d: %v", n, err)
		}

		var theirElem fr.Element
		theirElem.SetBigInt(theirs)
		if !ours.Equal(&theirElem) {
			t.Fatalf("n=%d digest mismatch\nours   %s\ntheirs %s", n, ours.String(), theirElem.String())
		}

		var theirBE [fr.Bytes]byte
		theirs.FillBytes(theirBE[:])
		var theirLE [fr.Bytes]byte
		for i := range theirBE {
			theirLE[fr.Bytes-1-i] = theirBE[i]
		}
		if ourLE := ElementToLEBytes(ours); ourLE != theirLE {
			t.Fatalf("n=%d little-endian digest bytes differ", n)
		}
	}
}

// Circuit that hashes three elements and checks against an expected native result.
type poseidonCircuit struct {
	Inputs   [3]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *poseidonCircuit) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[0], c.Inputs[1], c.Inputs[2])
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestCircuitMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	i1 := mustElement(t, "7553885614632219548127688026174585776320152166623257619763178041781456016062")
	i2 := mustElement(t, "2337838243217876174544784248400816541933405738836087430664765452605435675740")
	i3 := mustElement(t, "4318449279293553393006719276941638490334729643330833590842693275258805886300")

	native, err := Hash3(i1, i2, i3)
	if err != nil {
		t.Fatal(err)
	}

	witness := poseidonCircuit{
		Inputs:   [3]frontend.Variable{i1, i2, i3},
		Expected: native,
	}

	assert.ProverSucceeded(
		&poseidonCircuit{},
		&witness,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestConstraintCounts(t *testing.T) {
	ccs1, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit1{})
	if err != nil {
		t.Fatalf("compile 1-input: %v", err)
	}
	ccs2, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit2{})
	if err != nil {
		t.Fatalf("compile 2-input: %v", err)
	}
	ccs3, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit3{})
	if err != nil {
		t.Fatalf("compile 3-input: %v", err)
	}
	ccs6, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit6{})
	if err != nil {
		t.Fatalf("compile 6-input: %v", err)
	}
	ccs16, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit16{})
	if err != nil {
		t.Fatalf("compile 16-input: %v", err)
	}

	t.Logf("1-input constraints: %d", ccs1.GetNbConstraints())
	t.Logf("2-input constraints: %d", ccs2.GetNbConstraints())
	t.Logf("3-input constraints: %d", ccs3.GetNbConstraints())
	t.Logf("6-input constraints: %d", ccs6.GetNbConstraints())
	t.Logf("16-input constraints: %d", ccs16.GetNbConstraints())
}

type countCircuit1 struct {
	A frontend.Variable
}

func (c *countCircuit1) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.A)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

type countCircuit2 struct {
	A frontend.Variable
	B frontend.Variable
}

func (c *countCircuit2) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.A, c.B)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

type countCircuit3 struct {
	A frontend.Variable
	B frontend.Variable
	C frontend.Variable
}

func (c *countCircuit3) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.A, c.B, c.C)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

type countCircuit6 struct {
	Inputs [6]frontend.Variable
}

func (c *countCircuit6) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

type countCircuit16 struct {
	Inputs [16]frontend.Variable
}

func (c *countCircuit16) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

// Multi-hash large input tests ------------------------------------------------

type multiCircuit16 struct {
	Inputs   [16]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *multiCircuit16) Define(api frontend.API) error {
	out, err := gposeidon.MultiHash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

type multiCircuit32 struct {
	Inputs   [32]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *multiCircuit32) Define(api frontend.API) error {
	out, err := gposeidon.MultiHash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

type multiCircuit64 struct {
	Inputs   [64]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *multiCircuit64) Define(api frontend.API) error {
	out, err := gposeidon.MultiHash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

type multiCircuit128 struct {
	Inputs   [128]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *multiCircuit128) Define(api frontend.API) error {
	out, err := gposeidon.MultiHash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

type multiCircuit256 struct {
	Inputs   [256]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *multiCircuit256) Define(api frontend.API) error {
	out, err := gposeidon.MultiHash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestMultiHashLargeMatchesCircuit(t *testing.T) {
	assert := test.NewAssert(t)

	cases := []struct {
		name    string
		size    int
		builder func() (frontend.Circuit, frontend.Circuit)
	}{
		{
			name: "16",
			size: 16,
			builder: func() (frontend.Circuit, frontend.Circuit) {
				return &multiCircuit16{}, &multiCircuit16{}
			},
		},
		{
			name: "32",
			size: 32,
			builder: func() (frontend.Circuit, frontend.Circuit) {
				return &multiCircuit32{}, &multiCircuit32{}
			},
		},
		{
			name: "64",
			size: 64,
			builder: func() (frontend.Circuit, frontend.Circuit) {
				return &multiCircuit64{}, &multiCircuit64{}
			},
		},
		{
			name: "128",
			size: 128,
			builder: func() (frontend.Circuit, frontend.Circuit) {
				return &multiCircuit128{}, &multiCircuit128{}
			},
		},
		{
			name: "256",
			size: 256,
			builder: func() (frontend.Circuit, frontend.Circuit) {
				return &multiCircuit256{}, &multiCircuit256{}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			inputs := seqElements(tc.size)

			native, err := MultiHash(inputs...)
			if err != nil {
				t.Fatalf("native multihash %s: %v", tc.name, err)
			}

			var witness frontend.Circuit
			empty, wit := tc.builder()

			switch w := wit.(type) {
			case *multiCircuit16:
				for i := range inputs {
					w.Inputs[i] = inputs[i]
				}
				w.Expected = native
				witness = w
			case *multiCircuit32:
				for i := range inputs {
					w.Inputs[i] = inputs[i]
				}
				w.Expected = native
				witness = w
			case *multiCircuit64:
				for i := range inputs {
					w.Inputs[i] = inputs[i]
				}
				w.Expected = native
				witness = w
			case *multiCircuit128:
				for i := range inputs {
					w.Inputs[i] = inputs[i]
				}
				w.Expected = native
				witness = w
			case *multiCircuit256:
				for i := range inputs {
					w.Inputs[i] = inputs[i]
				}
				w.Expected = native
				witness = w
			default:
				t.Fatalf("unsupported circuit type")
			}

			ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, empty)
			if err != nil {
				t.Fatalf("compile %s: %v", tc.name, err)
			}
			t.Logf("multihash-%s constraints: %d", tc.name, ccs.GetNbConstraints())

			assert.ProverSucceeded(
				empty,
				witness,
				test.WithCurves(ecc.BN254),
				test.WithBackends(backend.GROTH16),
			)
		})
	}
}

var benchSink fr.Element

func BenchmarkHash2(b *testing.B) {
	in := seqElements(2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Hash(in[0], in[1])
		if err != nil {
			b.Fatal(err)
		}
		benchSink = out
	}
}

func BenchmarkHash16(b *testing.B) {
	in := seqElements(16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Hash(in...)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = out
	}
}

func BenchmarkMultiHash256(b *testing.B) {
	in := seqElements(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := MultiHash(in...)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = out
	}
}
