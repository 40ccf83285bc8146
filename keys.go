package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/schoolbook-crypto/ecdsa/ec"
)

// KeyPair holds a private signing scalar d and the matching public
// verification point Q = d*G. The package produces key pairs but never
// stores them; keeping d secret is entirely the caller's problem.
type KeyPair struct {
	// D is the private key, a scalar in [1, n).
	D *big.Int

	// PublicKey is the public verification point Q = D*G. It is a
	// finite point of the curve whenever D is in range.
	PublicKey ec.Point
}

// GeneratePrivateKey draws a uniform private key from [1, n) using the
// context's randomness source.
func (ctx *Context) GeneratePrivateKey() (*big.Int, error) {
	d, err := ctx.sampleScalar()
	if err != nil {
		return nil, fmt.Errorf("generating private key: %v", err)
	}

	return d, nil
}

// PublicKey derives the public verification point Q = d*G for the
// private key d. The private key must be in [1, n); any other value
// yields ErrScalarOutOfRange.
//
// Because d is smaller than the order of G, the derived point is
// always a finite point of the curve.
func (ctx *Context) PublicKey(d *big.Int) (ec.Point, error) {
	if !ctx.isInRange(d) {
		return ec.Point{}, fmt.Errorf("private key: %w", ErrScalarOutOfRange)
	}

	q, err := ctx.curve.ScalarMul(ctx.g, d)
	if err != nil {
		return ec.Point{}, fmt.Errorf("deriving public key: %v", err)
	}

	return q, nil
}

// GenerateKeyPair generates a fresh private key and derives its public
// verification point.
func (ctx *Context) GenerateKeyPair() (*KeyPair, error) {
	d, err := ctx.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}

	q, err := ctx.PublicKey(d)
	if err != nil {
		return nil, err
	}

	return &KeyPair{D: d, PublicKey: q}, nil
}
