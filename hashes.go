package poseidonbn254

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

func Hash1(a fr.Element) (fr.Element, error) {
	return Hash(a)
}

func Hash2(a, b fr.Element) (fr.Element, error) {
	return Hash(a, b)
}

func Hash3(a, b, c fr.Element) (fr.Element, error) {
	return Hash(a, b, c)
}

func Hash4(a, b, c, d fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d)
}

func Hash5(a, b, c, d, e fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e)
}

func Hash6(a, b, c, d, e, f fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f)
}

func Hash7(a, b, c, d, e, f, g fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g)
}

func Hash8(a, b, c, d, e, f, g, h fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h)
}

func Hash9(a, b, c, d, e, f, g, h, i fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i)
}

func Hash10(a, b, c, d, e, f, g, h, i, j fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i, j)
}

func Hash11(a, b, c, d, e, f, g, h, i, j, k fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i, j, k)
}

func Hash12(a, b, c, d, e, f, g, h, i, j, k, l fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i, j, k, l)
}

func Hash13(a, b, c, d, e, f, g, h, i, j, k, l, m fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i, j, k, l, m)
}

func Hash14(a, b, c, d, e, f, g, h, i, j, k, l, m, n fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i, j, k, l, m, n)
}

func Hash15(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o)
}

func Hash16(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p)
}
