package ec

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"testing"

	"github.com/schoolbook-crypto/ecdsa/internal/testutils"
)

func TestNewCurve(t *testing.T) {
	tests := map[string]struct {
		a, b, p       int64
		expectedError string
	}{
		"valid classroom curve": {
			a: 2, b: 2, p: 17,
		},
		"modulus too small": {
			a: 1, b: 1, p: 3,
			expectedError: "modulus 3 is not an odd number greater than 3",
		},
		"even modulus": {
			a: 1, b: 1, p: 16,
			expectedError: "modulus 16 is not an odd number greater than 3",
		},
		"coefficient a out of range": {
			a: 17, b: 2, p: 17,
			expectedError: "coefficient a = 17 is not a canonical residue mod 17",
		},
		"coefficient a negative": {
			a: -1, b: 2, p: 17,
			expectedError: "coefficient a = -1 is not a canonical residue mod 17",
		},
		"coefficient b out of range": {
			a: 2, b: 19, p: 17,
			expectedError: "coefficient b = 19 is not a canonical residue mod 17",
		},
		"singular curve": {
			a: 0, b: 0, p: 17,
			expectedError: "curve y^2 = x^3 + 0*x + 0 is singular mod 17",
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			curve, err := NewCurve(
				big.NewInt(test.a), big.NewInt(test.b), big.NewInt(test.p),
			)

			if test.expectedError == "" {
				testutils.AssertNoError(t, "NewCurve", err)
				if curve == nil {
					t.Fatal("expected a non-nil curve")
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error [%s]", test.expectedError)
			}
			testutils.AssertStringsEqual(
				t, "error message", test.expectedError, err.Error(),
			)
		})
	}
}

func TestIsOnCurve(t *testing.T) {
	curve := demoCurve(t)

	tests := map[string]struct {
		point    Point
		expected bool
	}{
		"point at infinity": {
			point:    Infinity(),
			expected: true,
		},
		"generator": {
			point:    NewPoint(big.NewInt(5), big.NewInt(1)),
			expected: true,
		},
		"another member": {
			point:    NewPoint(big.NewInt(0), big.NewInt(6)),
			expected: true,
		},
		"not a member": {
			point:    NewPoint(big.NewInt(1), big.NewInt(1)),
			expected: false,
		},
		"x coordinate not canonical": {
			point:    NewPoint(big.NewInt(22), big.NewInt(1)),
			expected: false,
		},
		"y coordinate not canonical": {
			point:    NewPoint(big.NewInt(5), big.NewInt(18)),
			expected: false,
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			testutils.AssertBoolsEqual(
				t, "membership", test.expected, curve.IsOnCurve(test.point),
			)
		})
	}
}

func TestAdd(t *testing.T) {
	curve := demoCurve(t)

	tests := map[string]struct {
		p1, p2   Point
		expected Point
	}{
		"two distinct points": {
			p1:       NewPoint(big.NewInt(6), big.NewInt(3)),
			p2:       NewPoint(big.NewInt(5), big.NewInt(1)),
			expected: NewPoint(big.NewInt(10), big.NewInt(6)),
		},
		"commuted operands": {
			p1:       NewPoint(big.NewInt(5), big.NewInt(1)),
			p2:       NewPoint(big.NewInt(6), big.NewInt(3)),
			expected: NewPoint(big.NewInt(10), big.NewInt(6)),
		},
		"identity on the right": {
			p1:       NewPoint(big.NewInt(5), big.NewInt(1)),
			p2:       Infinity(),
			expected: NewPoint(big.NewInt(5), big.NewInt(1)),
		},
		"identity on the left": {
			p1:       Infinity(),
			p2:       NewPoint(big.NewInt(5), big.NewInt(1)),
			expected: NewPoint(big.NewInt(5), big.NewInt(1)),
		},
		"identity on both sides": {
			p1:       Infinity(),
			p2:       Infinity(),
			expected: Infinity(),
		},
		"mutually inverse points": {
			p1:       NewPoint(big.NewInt(5), big.NewInt(1)),
			p2:       NewPoint(big.NewInt(5), big.NewInt(16)),
			expected: Infinity(),
		},
		"point added to itself": {
			p1:       NewPoint(big.NewInt(5), big.NewInt(1)),
			p2:       NewPoint(big.NewInt(5), big.NewInt(1)),
			expected: NewPoint(big.NewInt(6), big.NewInt(3)),
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			actual, err := curve.Add(test.p1, test.p2)
			testutils.AssertNoError(t, "Add", err)

			if !test.expected.Equal(actual) {
				t.Errorf(
					"unexpected sum\nexpected: %s\nactual:   %s",
					test.expected,
					actual,
				)
			}
		})
	}
}

func TestAddOffCurve(t *testing.T) {
	curve := demoCurve(t)
	offCurve := NewPoint(big.NewInt(1), big.NewInt(1))
	onCurve := NewPoint(big.NewInt(5), big.NewInt(1))

	_, err := curve.Add(offCurve, onCurve)
	testutils.AssertErrorIs(t, "Add with off-curve left operand", ErrPointOffCurve, err)

	_, err = curve.Add(onCurve, offCurve)
	testutils.AssertErrorIs(t, "Add with off-curve right operand", ErrPointOffCurve, err)
}

func TestDouble(t *testing.T) {
	curve := demoCurve(t)

	tests := map[string]struct {
		point    Point
		expected Point
	}{
		"finite point": {
			point:    NewPoint(big.NewInt(5), big.NewInt(1)),
			expected: NewPoint(big.NewInt(6), big.NewInt(3)),
		},
		"point at infinity": {
			point:    Infinity(),
			expected: Infinity(),
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			actual, err := curve.Double(test.point)
			testutils.AssertNoError(t, "Double", err)

			if !test.expected.Equal(actual) {
				t.Errorf(
					"unexpected result\nexpected: %s\nactual:   %s",
					test.expected,
					actual,
				)
			}
		})
	}
}

func TestDoubleVerticalTangent(t *testing.T) {
	// y^2 = x^3 + x over GF(5) contains the two-torsion point (0, 0);
	// the tangent there is vertical and doubling must yield the
	// identity.
	curve, err := NewCurve(big.NewInt(1), big.NewInt(0), big.NewInt(5))
	testutils.AssertNoError(t, "NewCurve", err)

	twoTorsion := NewPoint(big.NewInt(0), big.NewInt(0))
	testutils.AssertBoolsEqual(
		t, "membership", true, curve.IsOnCurve(twoTorsion),
	)

	doubled, err := curve.Double(twoTorsion)
	testutils.AssertNoError(t, "Double", err)
	testutils.AssertBoolsEqual(t, "IsInfinity", true, doubled.IsInfinity())

	// The same point fed through Add must agree.
	added, err := curve.Add(twoTorsion, twoTorsion)
	testutils.AssertNoError(t, "Add", err)
	testutils.AssertBoolsEqual(t, "IsInfinity", true, added.IsInfinity())
}

func TestDoubleOffCurve(t *testing.T) {
	curve := demoCurve(t)

	_, err := curve.Double(NewPoint(big.NewInt(1), big.NewInt(1)))
	testutils.AssertErrorIs(t, "Double with off-curve operand", ErrPointOffCurve, err)
}

func TestNeg(t *testing.T) {
	curve := demoCurve(t)

	negated := curve.Neg(NewPoint(big.NewInt(5), big.NewInt(1)))
	if !NewPoint(big.NewInt(5), big.NewInt(16)).Equal(negated) {
		t.Errorf("unexpected negation: %s", negated)
	}

	testutils.AssertBoolsEqual(
		t, "negated identity", true, curve.Neg(Infinity()).IsInfinity(),
	)

	sum, err := curve.Add(NewPoint(big.NewInt(5), big.NewInt(1)), negated)
	testutils.AssertNoError(t, "Add", err)
	testutils.AssertBoolsEqual(t, "P + (-P) is the identity", true, sum.IsInfinity())
}

// TestScalarMulTable walks the complete cyclic group spanned by the
// generator of the classroom curve. The expected multiples are the
// hand-computed table of the 19 elements; the 19th multiple closes the
// cycle at the identity.
func TestScalarMulTable(t *testing.T) {
	curve := demoCurve(t)
	g := NewPoint(big.NewInt(5), big.NewInt(1))

	expected := []string{
		"(5, 1)",
		"(6, 3)",
		"(10, 6)",
		"(3, 1)",
		"(9, 16)",
		"(16, 13)",
		"(0, 6)",
		"(13, 7)",
		"(7, 6)",
		"(7, 11)",
		"(13, 10)",
		"(0, 11)",
		"(16, 4)",
		"(9, 1)",
		"(3, 16)",
		"(10, 11)",
		"(6, 14)",
		"(5, 16)",
		"(infinity)",
	}

	var actual []string
	for k := int64(1); k <= 19; k++ {
		multiple, err := curve.ScalarMul(g, big.NewInt(k))
		testutils.AssertNoError(t, fmt.Sprintf("ScalarMul by %d", k), err)
		actual = append(actual, multiple.String())
	}

	testutils.AssertStringSlicesEqual(t, "scalar multiples of the generator", expected, actual)
}

func TestScalarMulEdgeCases(t *testing.T) {
	curve := demoCurve(t)
	g := NewPoint(big.NewInt(5), big.NewInt(1))

	zero, err := curve.ScalarMul(g, big.NewInt(0))
	testutils.AssertNoError(t, "ScalarMul by zero", err)
	testutils.AssertBoolsEqual(t, "0*P is the identity", true, zero.IsInfinity())

	identity, err := curve.ScalarMul(Infinity(), big.NewInt(5))
	testutils.AssertNoError(t, "ScalarMul of the identity", err)
	testutils.AssertBoolsEqual(t, "k*infinity is the identity", true, identity.IsInfinity())

	_, err = curve.ScalarMul(g, big.NewInt(-1))
	testutils.AssertErrorIs(t, "ScalarMul by a negative scalar", ErrNegativeScalar, err)

	_, err = curve.ScalarMul(NewPoint(big.NewInt(1), big.NewInt(1)), big.NewInt(2))
	testutils.AssertErrorIs(t, "ScalarMul of an off-curve point", ErrPointOffCurve, err)
}

// TestMembershipPreservation checks that the group operations map
// curve members to curve members for randomly drawn scalars.
func TestMembershipPreservation(t *testing.T) {
	for _, params := range []*Params{Demo17(), Secp256k1()} {
		t.Run(params.Name, func(t *testing.T) {
			curve := params.Curve

			p1, err := curve.ScalarMul(params.G, randomScalar(t, params.N))
			testutils.AssertNoError(t, "ScalarMul", err)
			p2, err := curve.ScalarMul(params.G, randomScalar(t, params.N))
			testutils.AssertNoError(t, "ScalarMul", err)

			sum, err := curve.Add(p1, p2)
			testutils.AssertNoError(t, "Add", err)
			testutils.AssertBoolsEqual(
				t, "sum on the curve", true, curve.IsOnCurve(sum),
			)

			doubled, err := curve.Double(p1)
			testutils.AssertNoError(t, "Double", err)
			testutils.AssertBoolsEqual(
				t, "doubling on the curve", true, curve.IsOnCurve(doubled),
			)

			multiple, err := curve.ScalarMul(p1, randomScalar(t, params.N))
			testutils.AssertNoError(t, "ScalarMul", err)
			testutils.AssertBoolsEqual(
				t, "multiple on the curve", true, curve.IsOnCurve(multiple),
			)
		})
	}
}

// TestScalarDistributivity checks (k1 + k2)*P = k1*P + k2*P for
// randomly drawn scalars.
func TestScalarDistributivity(t *testing.T) {
	for _, params := range []*Params{Demo17(), Secp256k1()} {
		t.Run(params.Name, func(t *testing.T) {
			curve := params.Curve
			k1 := randomScalar(t, params.N)
			k2 := randomScalar(t, params.N)

			left, err := curve.ScalarMul(params.G, new(big.Int).Add(k1, k2))
			testutils.AssertNoError(t, "ScalarMul by the sum", err)

			k1G, err := curve.ScalarMul(params.G, k1)
			testutils.AssertNoError(t, "ScalarMul by k1", err)
			k2G, err := curve.ScalarMul(params.G, k2)
			testutils.AssertNoError(t, "ScalarMul by k2", err)

			right, err := curve.Add(k1G, k2G)
			testutils.AssertNoError(t, "Add", err)

			if !left.Equal(right) {
				t.Errorf(
					"distributivity violated\n(k1+k2)*G: %s\nk1*G + k2*G: %s",
					left,
					right,
				)
			}
		})
	}
}

// TestGeneratorOrder checks n*G = identity for both parameter sets.
func TestGeneratorOrder(t *testing.T) {
	for _, params := range []*Params{Demo17(), Secp256k1()} {
		t.Run(params.Name, func(t *testing.T) {
			ng, err := params.Curve.ScalarMul(params.G, params.N)
			testutils.AssertNoError(t, "ScalarMul", err)
			testutils.AssertBoolsEqual(
				t, "n*G is the identity", true, ng.IsInfinity(),
			)
		})
	}
}

func demoCurve(t *testing.T) *Curve {
	curve, err := NewCurve(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	if err != nil {
		t.Fatalf("creating the classroom curve: [%v]", err)
	}

	return curve
}

func randomScalar(t *testing.T, n *big.Int) *big.Int {
	one := big.NewInt(1)

	k, err := rand.Int(rand.Reader, new(big.Int).Sub(n, one))
	if err != nil {
		t.Fatalf("sampling scalar: [%v]", err)
	}

	return k.Add(k, one)
}
