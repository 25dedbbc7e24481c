package poseidonbn254

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func leBytes32(t *testing.T, x *big.Int) [fr.Bytes]byte {
	t.Helper()
	var be [fr.Bytes]byte
	x.FillBytes(be[:])
	var le [fr.Bytes]byte
	for i := range be {
		le[fr.Bytes-1-i] = be[i]
	}
	return le
}

func TestElementBytesRoundTrip(t *testing.T) {
	values := []string{
		"0",
		"1",
		"2",
		"255",
		"18446744073709551616",
		"12345678901234567890123456789012345678901234567890",
		"21888242871839275222246405745257275088548364400416034343698204186575808495616",
	}
	for _, s := range values {
		e := mustElement(t, s)

		le := ElementToLEBytes(e)
		require.Equal(t, e, ElementFromLEBytes(le), "le round trip of %s", s)

		be := ElementToBEBytes(e)
		require.Equal(t, e, ElementFromBEBytes(be), "be round trip of %s", s)
	}
}

func TestBytesReduction(t *testing.T) {
	mod := fr.Modulus()

	zero := ElementFromLEBytes(leBytes32(t, mod))
	require.True(t, zero.IsZero(), "modulus must reduce to zero")

	modPlusOne := new(big.Int).Add(mod, big.NewInt(1))
	one := ElementFromLEBytes(leBytes32(t, modPlusOne))
	require.True(t, one.IsOne(), "modulus+1 must reduce to one")

	var all [fr.Bytes]byte
	for i := range all {
		all[i] = 0xff
	}
	reduced := ElementFromLEBytes(all)
	require.Equal(t,
		"6350874878119819312338956282401532410528162663560392320966563075034087161850",
		reduced.String(),
		"2^256-1 must reduce modulo the field order",
	)
	// All-ones is byte-order symmetric; the big-endian path reduces identically.
	require.Equal(t, reduced, ElementFromBEBytes(all))

	// Idempotent from the second application onward.
	first := ElementToLEBytes(reduced)
	second := ElementToLEBytes(ElementFromLEBytes(first))
	require.Equal(t, first, second)
}

func TestLEBEConsistency(t *testing.T) {
	e := mustElement(t, "1234567890123456789012345678901234567890")

	le := ElementToLEBytes(e)
	be := ElementToBEBytes(e)
	for i := range le {
		require.Equal(t, le[i], be[fr.Bytes-1-i])
	}

	require.Equal(t, e, ElementFromLEBytes(le))
	require.Equal(t, e, ElementFromBEBytes(be))
}

func TestHashBytesVectors(t *testing.T) {
	var one, two [fr.Bytes]byte
	one[0] = 1
	two[0] = 2

	digest1, err := HashBytes(one)
	require.NoError(t, err)
	require.Equal(t,
		"33018202c57d898b84338b16d1a4960e133c6a4d656cfec1bd62a9ea00611729",
		hex.EncodeToString(digest1[:]),
	)

	digest2, err := HashBytes(one, two)
	require.NoError(t, err)
	require.Equal(t,
		"9a1817447a60199e51453274f217362acfe962966b4cf63d4190d6e7f5c05c11",
		hex.EncodeToString(digest2[:]),
	)

	// The byte path agrees with the element path.
	direct, err := Hash(uintElements(1, 2)...)
	require.NoError(t, err)
	require.Equal(t, ElementToLEBytes(direct), digest2)
}

func TestHashBytesBE(t *testing.T) {
	var one, two [fr.Bytes]byte
	one[fr.Bytes-1] = 1
	two[fr.Bytes-1] = 2

	digest, err := HashBytesBE(one, two)
	require.NoError(t, err)

	direct, err := Hash(uintElements(1, 2)...)
	require.NoError(t, err)
	require.Equal(t, ElementToBEBytes(direct), digest)

	// Same digest as the little-endian path, byte-reversed.
	var leOne, leTwo [fr.Bytes]byte
	leOne[0] = 1
	leTwo[0] = 2
	leDigest, err := HashBytes(leOne, leTwo)
	require.NoError(t, err)
	for i := range digest {
		require.Equal(t, digest[i], leDigest[fr.Bytes-1-i])
	}
}

func TestHashBytesErrors(t *testing.T) {
	_, err := HashBytes()
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = HashBytesBE()
	require.ErrorIs(t, err, ErrEmptyInput)

	inputs := make([][fr.Bytes]byte, 17)
	for i := range inputs {
		inputs[i][0] = byte(i + 1)
	}
	_, err = HashBytes(inputs...)
	require.ErrorIs(t, err, ErrInvalidInputCount)
}

func BenchmarkHashBytes2(b *testing.B) {
	var one, two [fr.Bytes]byte
	one[0] = 1
	two[0] = 2

	var sink [fr.Bytes]byte
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := HashBytes(one, two)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}
