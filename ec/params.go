package ec

import (
	"fmt"
	"math/big"
)

// Params bundles a curve with a generator point and the prime order of
// the subgroup the generator spans. Every call to a named-parameter
// function returns a fresh instance, so a caller can never corrupt the
// parameters seen by another caller.
type Params struct {
	// Name identifies the parameter set.
	Name string

	// Curve is the underlying short Weierstrass curve.
	Curve *Curve

	// G is the generator point.
	G Point

	// N is the order of G. It must be prime; every scalar used by the
	// signature scheme lives in [1, N).
	N *big.Int
}

// Secp256k1 returns the parameters of the secp256k1 curve
// y^2 = x^3 + 7 as specified in SEC 2, section 2.4.1. This is the
// curve used by Bitcoin and Ethereum.
func Secp256k1() *Params {
	p := mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	n := mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	gx := mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy := mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	curve, err := NewCurve(big.NewInt(0), big.NewInt(7), p)
	if err != nil {
		panic(err)
	}

	return &Params{
		Name:  "secp256k1",
		Curve: curve,
		G:     NewPoint(gx, gy),
		N:     n,
	}
}

// Demo17 returns the classroom curve y^2 = x^3 + 2x + 2 over GF(17).
//
// The point (5, 1) generates the full group of the curve, which has
// prime order 19. Every intermediate value fits in a single digit or
// two, so complete scalar-multiple tables can be checked by hand. The
// parameters offer no security whatsoever.
func Demo17() *Params {
	curve, err := NewCurve(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	if err != nil {
		panic(err)
	}

	return &Params{
		Name:  "demo17",
		Curve: curve,
		G:     NewPoint(big.NewInt(5), big.NewInt(1)),
		N:     big.NewInt(19),
	}
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("ec: malformed hex constant %q", s))
	}

	return v
}
