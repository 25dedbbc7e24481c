package poseidonbn254

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// ElementFromLEBytes interprets b as a little-endian unsigned integer and
// reduces it modulo the field order. Values at or above the modulus are fully
// reduced; no bits are discarded.
func ElementFromLEBytes(b [fr.Bytes]byte) fr.Element {
	var be [fr.Bytes]byte
	for i := range b {
		be[fr.Bytes-1-i] = b[i]
	}
	var out fr.Element
	out.SetBytes(be[:])
	return out
}

// ElementToLEBytes serializes the canonical residue as 32 little-endian bytes,
// zero-padded.
func ElementToLEBytes(e fr.Element) [fr.Bytes]byte {
	be := e.Bytes()
	var le [fr.Bytes]byte
	for i := range be {
		le[fr.Bytes-1-i] = be[i]
	}
	return le
}

// ElementFromBEBytes is the big-endian counterpart of ElementFromLEBytes, with
// the same reduction contract.
func ElementFromBEBytes(b [fr.Bytes]byte) fr.Element {
	var out fr.Element
	out.SetBytes(b[:])
	return out
}

// ElementToBEBytes serializes the canonical residue as 32 big-endian bytes.
func ElementToBEBytes(e fr.Element) [fr.Bytes]byte {
	return e.Bytes()
}

// HashBytes hashes 32-byte little-endian values reduced into the field and
// returns the digest in the same encoding. Arity limits are inherited from
// Hash.
func HashBytes(inputs ...[fr.Bytes]byte) ([fr.Bytes]byte, error) {
	if len(inputs) == 0 {
		return [fr.Bytes]byte{}, ErrEmptyInput
	}
	elems := make([]fr.Element, len(inputs))
	for i, b := range inputs {
		elems[i] = ElementFromLEBytes(b)
	}
	out, err := Hash(elems...)
	if err != nil {
		return [fr.Bytes]byte{}, err
	}
	return ElementToLEBytes(out), nil
}

// HashBytesBE is the big-endian counterpart of HashBytes.
func HashBytesBE(inputs ...[fr.Bytes]byte) ([fr.Bytes]byte, error) {
	if len(inputs) == 0 {
		return [fr.Bytes]byte{}, ErrEmptyInput
	}
	elems := make([]fr.Element, len(inputs))
	for i, b := range inputs {
		elems[i] = ElementFromBEBytes(b)
	}
	out, err := Hash(elems...)
	if err != nil {
		return [fr.Bytes]byte{}, err
	}
	return ElementToBEBytes(out), nil
}
