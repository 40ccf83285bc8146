// Package ec implements the group of points of a short Weierstrass
// elliptic curve
//
//	y^2 = x^3 + a*x + b (mod p)
//
// over a prime field, together with the chord-and-tangent group law:
// point addition, doubling, and double-and-add scalar multiplication.
// All arithmetic is performed in affine coordinates through the field
// package.
//
// The implementation favors clarity over speed and is not constant
// time. It exists to make the group law inspectable, not to protect
// production keys.
package ec

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/schoolbook-crypto/ecdsa/field"
)

// ErrPointOffCurve reports an input point that does not satisfy the
// curve equation. Feeding an off-curve point to a group operation is a
// programmer error, not a condition to retry.
var ErrPointOffCurve = errors.New("point does not lie on the curve")

// ErrNegativeScalar reports a negative scalar passed to a scalar
// multiplication.
var ErrNegativeScalar = errors.New("scalar must be non-negative")

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Curve represents the short Weierstrass curve y^2 = x^3 + a*x + b
// over GF(p). A Curve is immutable after construction and safe for
// concurrent use.
type Curve struct {
	a, b, p *big.Int
}

// NewCurve returns the curve with the given coefficients over GF(p).
//
// The modulus must be odd and greater than 3, and both coefficients
// must be canonical residues mod p. The curve must be non-singular,
// that is 4a^3 + 27b^2 != 0 (mod p), otherwise the chord-and-tangent
// construction does not form a group. Primality of p is the caller's
// responsibility; it is not verified here.
func NewCurve(a, b, p *big.Int) (*Curve, error) {
	if p.Cmp(three) <= 0 || p.Bit(0) == 0 {
		return nil, fmt.Errorf("modulus %v is not an odd number greater than 3", p)
	}
	if a.Sign() < 0 || a.Cmp(p) >= 0 {
		return nil, fmt.Errorf("coefficient a = %v is not a canonical residue mod %v", a, p)
	}
	if b.Sign() < 0 || b.Cmp(p) >= 0 {
		return nil, fmt.Errorf("coefficient b = %v is not a canonical residue mod %v", b, p)
	}

	curve := &Curve{
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
		p: new(big.Int).Set(p),
	}

	if curve.discriminantFactor().Sign() == 0 {
		return nil, fmt.Errorf(
			"curve y^2 = x^3 + %v*x + %v is singular mod %v", a, b, p,
		)
	}

	return curve, nil
}

// discriminantFactor computes 4a^3 + 27b^2 mod p, the factor of the
// curve discriminant that decides singularity. The small constants are
// reduced into the field first; for tiny demo moduli they may exceed p.
func (c *Curve) discriminantFactor() *big.Int {
	four := new(big.Int).Mod(big.NewInt(4), c.p)
	twentySeven := new(big.Int).Mod(big.NewInt(27), c.p)

	a3 := field.Mul(four, field.Pow(c.a, three, c.p), c.p)
	b2 := field.Mul(twentySeven, field.Mul(c.b, c.b, c.p), c.p)
	return field.Add(a3, b2, c.p)
}

// A returns a copy of the coefficient a.
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns a copy of the coefficient b.
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// P returns a copy of the field modulus.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %v*x + %v mod %v", c.a, c.b, c.p)
}

// IsOnCurve returns true when the point belongs to the curve. The
// point at infinity is a member by definition; a finite point is a
// member when both coordinates are canonical residues mod p and
// satisfy the curve equation with both sides reduced in the field.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}

	if pt.x.Sign() < 0 || pt.x.Cmp(c.p) >= 0 {
		return false
	}
	if pt.y.Sign() < 0 || pt.y.Cmp(c.p) >= 0 {
		return false
	}

	lhs := field.Mul(pt.y, pt.y, c.p)
	return lhs.Cmp(c.rhs(pt.x)) == 0
}

// rhs evaluates x^3 + a*x + b in the field.
func (c *Curve) rhs(x *big.Int) *big.Int {
	x3 := field.Pow(x, three, c.p)
	ax := field.Mul(c.a, x, c.p)
	return field.Add(x3, field.Add(ax, c.b, c.p), c.p)
}

// Neg returns -P, the reflection of P across the x axis. The identity
// is its own inverse.
func (c *Curve) Neg(pt Point) Point {
	if pt.IsInfinity() {
		return Infinity()
	}

	return NewPoint(pt.x, field.Neg(pt.y, c.p))
}

// Add returns the group sum of two points on the curve.
//
// The case analysis of the chord rule is:
//   - the identity is neutral on either side,
//   - mutually inverse points add to the identity,
//   - a point added to itself is doubled,
//   - otherwise the chord through the two points has slope
//     s = (y2 - y1) / (x2 - x1) and intersects the curve a third time
//     at x3 = s^2 - x1 - x2, y3 = s*(x1 - x3) - y1.
//
// Both operands must lie on the curve; an off-curve operand yields
// ErrPointOffCurve.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if !c.IsOnCurve(p1) {
		return Point{}, fmt.Errorf("left operand %s: %w", p1, ErrPointOffCurve)
	}
	if !c.IsOnCurve(p2) {
		return Point{}, fmt.Errorf("right operand %s: %w", p2, ErrPointOffCurve)
	}

	if p1.IsInfinity() {
		return p2, nil
	}
	if p2.IsInfinity() {
		return p1, nil
	}

	// Two distinct points of the curve share an x coordinate only when
	// they are mutual inverses; the chord through them is vertical.
	if p1.x.Cmp(p2.x) == 0 && p1.y.Cmp(field.Neg(p2.y, c.p)) == 0 {
		return Infinity(), nil
	}

	if p1.Equal(p2) {
		return c.Double(p1)
	}

	s, err := field.Div(
		field.Sub(p2.y, p1.y, c.p),
		field.Sub(p2.x, p1.x, c.p),
		c.p,
	)
	if err != nil {
		// Unreachable when the case analysis above is exhaustive: the
		// denominator is zero only for equal x coordinates.
		return Point{}, fmt.Errorf(
			"internal: chord slope of %s + %s: %v", p1, p2, err,
		)
	}

	x3 := field.Sub(field.Mul(s, s, c.p), field.Add(p1.x, p2.x, c.p), c.p)
	y3 := field.Sub(field.Mul(s, field.Sub(p1.x, x3, c.p), c.p), p1.y, c.p)

	return NewPoint(x3, y3), nil
}

// Double returns 2P, the sum of a point on the curve with itself.
//
// The tangent at a point with y = 0 is vertical, so doubling such a
// point yields the identity. Otherwise the tangent slope
// s = (3x^2 + a) / (2y) gives x3 = s^2 - 2x, y3 = s*(x - x3) - y.
//
// The operand must lie on the curve; an off-curve operand yields
// ErrPointOffCurve.
func (c *Curve) Double(pt Point) (Point, error) {
	if !c.IsOnCurve(pt) {
		return Point{}, fmt.Errorf("operand %s: %w", pt, ErrPointOffCurve)
	}

	if pt.IsInfinity() {
		return Infinity(), nil
	}
	if pt.y.Sign() == 0 {
		return Infinity(), nil
	}

	s, err := field.Div(
		field.Add(field.Mul(three, field.Mul(pt.x, pt.x, c.p), c.p), c.a, c.p),
		field.Mul(two, pt.y, c.p),
		c.p,
	)
	if err != nil {
		// Unreachable: y = 0 is handled above and the modulus is odd.
		return Point{}, fmt.Errorf("internal: tangent slope at %s: %v", pt, err)
	}

	x3 := field.Sub(field.Mul(s, s, c.p), field.Mul(two, pt.x, c.p), c.p)
	y3 := field.Sub(field.Mul(s, field.Sub(pt.x, x3, c.p), c.p), pt.y, c.p)

	return NewPoint(x3, y3), nil
}

// ScalarMul returns k*P computed with the double-and-add algorithm.
//
// The bits of k are scanned from the most significant to the least
// significant one; the accumulator is doubled at every bit and the
// base point is added in at every set bit. The cost is logarithmic in
// k, which keeps 256-bit scalars practical where repeated addition
// would not terminate in any useful time.
//
// Multiplying by zero or multiplying the identity yields the identity.
// The scalar must be non-negative and the point must lie on the curve.
func (c *Curve) ScalarMul(pt Point, k *big.Int) (Point, error) {
	if k.Sign() < 0 {
		return Point{}, fmt.Errorf("scalar %v: %w", k, ErrNegativeScalar)
	}
	if !c.IsOnCurve(pt) {
		return Point{}, fmt.Errorf("operand %s: %w", pt, ErrPointOffCurve)
	}

	if k.Sign() == 0 || pt.IsInfinity() {
		return Infinity(), nil
	}

	acc := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error

		acc, err = c.Double(acc)
		if err != nil {
			return Point{}, err
		}

		if k.Bit(i) == 1 {
			acc, err = c.Add(acc, pt)
			if err != nil {
				return Point{}, err
			}
		}
	}

	return acc, nil
}
