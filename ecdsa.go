// Package ecdsa implements the Elliptic Curve Digital Signature
// Algorithm from first principles over short Weierstrass curves in a
// prime field.
//
// The package is built for study. Key generation, signing, and
// verification are expressed directly in terms of the affine group law
// from the ec package and prime-field arithmetic from the field
// package, so every algebraic step of the protocol can be read and
// single-stepped. Nothing here is constant time and no side-channel
// protection is attempted; do not use this package to protect real
// keys.
//
// Message hashing and randomness are injected capabilities. A Context
// defaults to SHA-256 and crypto/rand but accepts replacements through
// WithHasher and WithRandom, which keeps every protocol operation
// deterministic under test.
//
// Two moduli are in play throughout the package and must never be
// mixed: the coordinate field of the curve is GF(p), while every
// scalar of the protocol (private keys, nonces, hashed messages,
// signature components) lives in the scalar field mod n, the prime
// order of the generator. All protocol arithmetic below is mod n.
package ecdsa

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/schoolbook-crypto/ecdsa/ec"
)

// Hasher turns an arbitrary message into digest bytes. The digest is
// treated as an opaque big-endian byte string; any digest length that
// fits in a big integer works.
type Hasher func(message []byte) []byte

// ErrScalarOutOfRange reports a protocol scalar outside the range
// [1, n). This is a programmer error; retrying with the same input
// cannot succeed.
var ErrScalarOutOfRange = errors.New("scalar outside the range [1, n)")

// ErrBadNonce reports a degenerate intermediate hit during signing:
// k*G was the identity, or one of the signature components reduced to
// zero. The inputs were valid; signing again with a fresh nonce is
// expected to succeed.
var ErrBadNonce = errors.New("degenerate signing intermediate, retry with a fresh nonce")

var one = big.NewInt(1)

// Context bundles the domain parameters of an ECDSA deployment: the
// curve, the generator point G, and the prime order n of the subgroup
// G spans, together with the injected hash and randomness
// capabilities. A Context is immutable after construction and safe for
// concurrent use by any number of goroutines.
type Context struct {
	curve  *ec.Curve
	g      ec.Point
	n      *big.Int
	hash   Hasher
	random io.Reader
}

// Option adjusts a Context under construction.
type Option func(*Context)

// WithHasher replaces the default SHA-256 digest function.
func WithHasher(h Hasher) Option {
	return func(ctx *Context) {
		ctx.hash = h
	}
}

// WithRandom replaces the default crypto/rand randomness source. The
// reader feeds uniform scalar sampling for private keys and nonces;
// production callers must keep it cryptographically secure.
func WithRandom(r io.Reader) Option {
	return func(ctx *Context) {
		ctx.random = r
	}
}

// New constructs a Context for the given curve, generator, and
// generator order.
//
// The generator must be a finite point of the curve and n must be its
// order: n*G must come back to the identity. Primality of n is the
// caller's responsibility, as everywhere else in this module. The
// constructor verifies what it can and rejects parameters that fail.
func New(curve *ec.Curve, g ec.Point, n *big.Int, opts ...Option) (*Context, error) {
	if curve == nil {
		return nil, errors.New("curve must not be nil")
	}
	if n == nil || n.Cmp(one) <= 0 {
		return nil, fmt.Errorf("generator order %v must be greater than 1", n)
	}
	if g.IsInfinity() {
		return nil, errors.New("generator must not be the identity")
	}
	if !curve.IsOnCurve(g) {
		return nil, fmt.Errorf("generator %s: %w", g, ec.ErrPointOffCurve)
	}

	ng, err := curve.ScalarMul(g, n)
	if err != nil {
		return nil, fmt.Errorf("checking generator order: %v", err)
	}
	if !ng.IsInfinity() {
		return nil, fmt.Errorf("generator %s does not have order %v", g, n)
	}

	ctx := &Context{
		curve: curve,
		g:     g,
		n:     new(big.Int).Set(n),
		hash: func(message []byte) []byte {
			digest := sha256.Sum256(message)
			return digest[:]
		},
		random: rand.Reader,
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx, nil
}

// Curve returns the curve the context operates on.
func (ctx *Context) Curve() *ec.Curve {
	return ctx.curve
}

// Generator returns the generator point G.
func (ctx *Context) Generator() ec.Point {
	return ctx.g
}

// Order returns a copy of the generator order n.
func (ctx *Context) Order() *big.Int {
	return new(big.Int).Set(ctx.n)
}

// HashMessage maps a message to a scalar h in [1, n).
//
// The digest bytes produced by the hash capability are read as a
// big-endian integer H and reduced with
//
//	h = (H mod (n-1)) + 1
//
// so the result can never be zero, which signing requires. The
// reduction deviates from standard ECDSA, which takes the leftmost
// bitlen(n) bits of the digest and reduces them mod n: the variant
// used here trades a slight bias for the guarantee that every message
// maps to a usable scalar. Implementations targeting interoperability
// with standard ECDSA need the standard reduction instead.
func (ctx *Context) HashMessage(message []byte) *big.Int {
	h := new(big.Int).SetBytes(ctx.hash(message))
	h.Mod(h, new(big.Int).Sub(ctx.n, one))
	return h.Add(h, one)
}

// isInRange reports whether the scalar is in [1, n).
func (ctx *Context) isInRange(scalar *big.Int) bool {
	return scalar != nil && scalar.Sign() > 0 && scalar.Cmp(ctx.n) < 0
}

// sampleScalar draws a uniform scalar from [1, n) out of the context's
// randomness source.
func (ctx *Context) sampleScalar() (*big.Int, error) {
	// rand.Int samples [0, n-1) uniformly; shifting by one maps the
	// interval to [1, n) without disturbing uniformity.
	s, err := rand.Int(ctx.random, new(big.Int).Sub(ctx.n, one))
	if err != nil {
		return nil, fmt.Errorf("sampling scalar: %v", err)
	}

	return s.Add(s, one), nil
}
