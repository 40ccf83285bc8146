package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/schoolbook-crypto/ecdsa/field"
)

// Signature is an ECDSA signature. Both components are scalars in
// [1, n); neither may be zero.
type Signature struct {
	R *big.Int
	S *big.Int
}

func (s *Signature) String() string {
	return fmt.Sprintf("(r=%v, s=%v)", s.R, s.S)
}

// Sign produces a signature over the hashed message h with the private
// key d and the one-time nonce k:
//
//	R = k*G
//	r = x(R) mod n
//	s = k^(-1) * (h + d*r) mod n
//
// All three inputs must be scalars in [1, n); a violation yields
// ErrScalarOutOfRange. When an intermediate degenerates (R is the
// identity, r = 0, or s = 0) the function fails with ErrBadNonce and
// the caller retries with a fresh nonce.
//
// The nonce is an explicit parameter so that signatures are
// reproducible under test. Production callers must draw k from a
// cryptographically secure source and must never reuse a nonce with
// the same private key: two signatures sharing a nonce leak the key.
// The package does not, and cannot, enforce non-reuse.
func (ctx *Context) Sign(h, d, k *big.Int) (*Signature, error) {
	if !ctx.isInRange(h) {
		return nil, fmt.Errorf("hashed message: %w", ErrScalarOutOfRange)
	}
	if !ctx.isInRange(d) {
		return nil, fmt.Errorf("private key: %w", ErrScalarOutOfRange)
	}
	if !ctx.isInRange(k) {
		return nil, fmt.Errorf("nonce: %w", ErrScalarOutOfRange)
	}

	rPoint, err := ctx.curve.ScalarMul(ctx.g, k)
	if err != nil {
		return nil, fmt.Errorf("computing k*G: %v", err)
	}
	if rPoint.IsInfinity() {
		return nil, fmt.Errorf("k*G is the identity: %w", ErrBadNonce)
	}

	// The modulus switches here: x(R) is a coordinate mod p, r is a
	// scalar mod n.
	r := new(big.Int).Mod(rPoint.X(), ctx.n)
	if r.Sign() == 0 {
		return nil, fmt.Errorf("r = 0: %w", ErrBadNonce)
	}

	kInv, err := field.Inv(k, ctx.n)
	if err != nil {
		// Unreachable: k was range-checked above, so it is non-zero.
		return nil, fmt.Errorf("internal: inverting nonce: %v", err)
	}

	s := field.Mul(kInv, field.Add(h, field.Mul(d, r, ctx.n), ctx.n), ctx.n)
	if s.Sign() == 0 {
		return nil, fmt.Errorf("s = 0: %w", ErrBadNonce)
	}

	return &Signature{R: r, S: s}, nil
}

// SignMessage hashes the message and signs it with a nonce freshly
// drawn from the context's randomness source, retrying for as long as
// the nonce turns out degenerate.
func (ctx *Context) SignMessage(message []byte, d *big.Int) (*Signature, error) {
	h := ctx.HashMessage(message)

	for {
		k, err := ctx.sampleScalar()
		if err != nil {
			return nil, fmt.Errorf("generating nonce: %v", err)
		}

		signature, err := ctx.Sign(h, d, k)
		if errors.Is(err, ErrBadNonce) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return signature, nil
	}
}
