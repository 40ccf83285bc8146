package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/schoolbook-crypto/ecdsa/ec"
	"github.com/schoolbook-crypto/ecdsa/field"
)

// Verify checks a signature over the hashed message h against the
// public key:
//
//	w  = s^(-1) mod n
//	u1 = h*w mod n
//	u2 = r*w mod n
//	P  = u1*G + u2*Q
//
// and accepts when P is finite and x(P) mod n equals r.
//
// Verification answers a yes/no question and therefore never reports
// malformed inputs as errors: an invalid public key (the identity, a
// point off the curve, a point whose order check n*Q = identity
// fails), or signature components outside [1, n), simply yield false.
// The only non-nil error is the range precondition on h, which is a
// programmer error, not a property of the signature.
func (ctx *Context) Verify(h *big.Int, publicKey ec.Point, signature *Signature) (bool, error) {
	if !ctx.isInRange(h) {
		return false, fmt.Errorf("hashed message: %w", ErrScalarOutOfRange)
	}

	if signature == nil || signature.R == nil || signature.S == nil {
		return false, nil
	}
	if !ctx.validPublicKey(publicKey) {
		return false, nil
	}
	if !ctx.isInRange(signature.R) || !ctx.isInRange(signature.S) {
		return false, nil
	}

	w, err := field.Inv(signature.S, ctx.n)
	if err != nil {
		// Unreachable: s was range-checked above, so it is non-zero.
		return false, fmt.Errorf("internal: inverting s: %v", err)
	}

	u1 := field.Mul(h, w, ctx.n)
	u2 := field.Mul(signature.R, w, ctx.n)

	p1, err := ctx.curve.ScalarMul(ctx.g, u1)
	if err != nil {
		return false, fmt.Errorf("internal: computing u1*G: %v", err)
	}

	p2, err := ctx.curve.ScalarMul(publicKey, u2)
	if err != nil {
		return false, fmt.Errorf("internal: computing u2*Q: %v", err)
	}

	sum, err := ctx.curve.Add(p1, p2)
	if err != nil {
		return false, fmt.Errorf("internal: computing u1*G + u2*Q: %v", err)
	}

	if sum.IsInfinity() {
		return false, nil
	}

	return new(big.Int).Mod(sum.X(), ctx.n).Cmp(signature.R) == 0, nil
}

// VerifyMessage hashes the message and verifies the signature over it.
func (ctx *Context) VerifyMessage(message []byte, publicKey ec.Point, signature *Signature) (bool, error) {
	return ctx.Verify(ctx.HashMessage(message), publicKey, signature)
}

// validPublicKey runs the public key checks of the verification
// algorithm: the key must be a finite point lying on the curve and
// multiplying it by the generator order must land on the identity.
func (ctx *Context) validPublicKey(q ec.Point) bool {
	if q.IsInfinity() {
		return false
	}
	if !ctx.curve.IsOnCurve(q) {
		return false
	}

	nq, err := ctx.curve.ScalarMul(q, ctx.n)
	if err != nil {
		return false
	}

	return nq.IsInfinity()
}
