package ec

import (
	"fmt"
	"math/big"
)

// Point is a point of an elliptic-curve group in affine coordinates.
//
// A point is one of two variants: a finite point carrying its (x, y)
// coordinates, or the point at infinity acting as the identity element
// of the group. The variant is an explicit tag, never a sentinel
// coordinate pair, so every operation dispatches on IsInfinity before
// touching coordinates. The zero value of Point is the point at
// infinity.
//
// Points are immutable values. Constructors copy the coordinates they
// receive and accessors return copies, so no operation can modify a
// point that has already been handed out.
type Point struct {
	x, y   *big.Int
	finite bool
}

// NewPoint returns the finite point (x, y). The coordinates are
// copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x:      new(big.Int).Set(x),
		y:      new(big.Int).Set(y),
		finite: true,
	}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{}
}

// IsInfinity returns true when the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns a copy of the x coordinate. The point at infinity has no
// coordinates; calling X on it is a programmer error and panics.
// Callers must dispatch on IsInfinity first.
func (p Point) X() *big.Int {
	if p.IsInfinity() {
		panic("ec: the point at infinity has no x coordinate")
	}

	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate. The point at infinity has no
// coordinates; calling Y on it is a programmer error and panics.
// Callers must dispatch on IsInfinity first.
func (p Point) Y() *big.Int {
	if p.IsInfinity() {
		panic("ec: the point at infinity has no y coordinate")
	}

	return new(big.Int).Set(p.y)
}

// Equal returns true when both points are the same variant with equal
// coordinates.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}

	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}

	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
