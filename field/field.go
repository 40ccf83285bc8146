// Package field implements arithmetic over the prime field GF(p).
//
// Field elements are canonical residues: non-negative arbitrary
// precision integers in the range [0, p). Every function expects its
// inputs in canonical form and returns a canonical result. The modulus
// is threaded explicitly through every call; the field itself carries
// no state. No function modifies its arguments.
//
// The functions are valid for any modulus size used by real curves,
// 256 bits and beyond, because all arithmetic is performed on
// math/big integers.
package field

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNonInvertible is returned when the multiplicative inverse of zero
// is requested. Zero is the only non-invertible element of GF(p) when
// p is prime.
var ErrNonInvertible = errors.New("zero has no multiplicative inverse")

var two = big.NewInt(2)

// Add returns (c + d) mod p.
func Add(c, d, p *big.Int) *big.Int {
	r := new(big.Int).Add(c, d)
	return r.Mod(r, p)
}

// Sub returns (c - d) mod p. The subtraction is expressed as the
// addition of the additive inverse so that no negative intermediate
// value ever materializes.
func Sub(c, d, p *big.Int) *big.Int {
	return Add(c, Neg(d, p), p)
}

// Neg returns the additive inverse (p - c) mod p.
//
// The input must be a canonical field element. Passing a negative
// value or a value not smaller than p is a programmer error and
// panics.
func Neg(c, p *big.Int) *big.Int {
	if c.Sign() < 0 || c.Cmp(p) >= 0 {
		panic(fmt.Sprintf("field: %v is not a canonical residue mod %v", c, p))
	}

	r := new(big.Int).Sub(p, c)
	return r.Mod(r, p)
}

// Mul returns (c * d) mod p.
func Mul(c, d, p *big.Int) *big.Int {
	r := new(big.Int).Mul(c, d)
	return r.Mod(r, p)
}

// Pow returns c^e mod p, computed with the square-and-multiply
// algorithm. The exponent must be non-negative; a negative exponent is
// a programmer error and panics.
func Pow(c, e, p *big.Int) *big.Int {
	if e.Sign() < 0 {
		panic(fmt.Sprintf("field: negative exponent %v", e))
	}

	return new(big.Int).Exp(c, e, p)
}

// Inv returns the multiplicative inverse of c modulo p.
//
// The inverse is computed as c^(p-2) mod p, which by Fermat's little
// theorem is correct for a prime modulus. Primality of p is the
// caller's responsibility and is not verified here. Requesting the
// inverse of zero returns ErrNonInvertible.
func Inv(c, p *big.Int) (*big.Int, error) {
	if c.Sign() == 0 {
		return nil, ErrNonInvertible
	}

	e := new(big.Int).Sub(p, two)
	return Pow(c, e, p), nil
}

// Div returns c * d^(-1) mod p. Division by zero returns
// ErrNonInvertible.
func Div(c, d, p *big.Int) (*big.Int, error) {
	dInv, err := Inv(d, p)
	if err != nil {
		return nil, err
	}

	return Mul(c, dInv, p), nil
}
