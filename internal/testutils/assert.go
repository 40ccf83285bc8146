// Package testutils provides the assertion helpers shared by the test
// suites of this module.
package testutils

import (
	"errors"
	"math/big"
	"testing"

	"golang.org/x/exp/slices"
)

// AssertBigIntNonZero checks if the provided not-nil big integer is
// non-zero. If the provided big integer is zero, it reports a test
// failure.
func AssertBigIntNonZero(t *testing.T, description string, actual *big.Int) {
	if actual.Sign() == 0 {
		t.Errorf("expected %s to be non-zero", description)
	}
}

// AssertBigIntsEqual checks if two not-nil big integers are equal. If
// not, it reports a test failure.
func AssertBigIntsEqual(t *testing.T, description string, expected *big.Int, actual *big.Int) {
	if expected.Cmp(actual) != 0 {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertStringsEqual checks if two strings are equal. If not, it
// reports a test failure.
func AssertStringsEqual(t *testing.T, description string, expected string, actual string) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %s\nactual:   %s\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertStringSlicesEqual checks if two string slices hold the same
// elements in the same order. If not, it reports a test failure.
func AssertStringSlicesEqual(t *testing.T, description string, expected []string, actual []string) {
	if !slices.Equal(expected, actual) {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertBoolsEqual checks if two booleans are equal. If not, it
// reports a test failure.
func AssertBoolsEqual(t *testing.T, description string, expected bool, actual bool) {
	if expected != actual {
		t.Errorf(
			"unexpected %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertNoError fails the test immediately when err is non-nil. The
// assertions following it in a test depend on the operation having
// succeeded, hence Fatalf rather than Errorf.
func AssertNoError(t *testing.T, description string, err error) {
	if err != nil {
		t.Fatalf("unexpected error from %s: [%v]", description, err)
	}
}

// AssertErrorIs checks if the actual error wraps the expected sentinel
// as understood by errors.Is. If not, it reports a test failure.
func AssertErrorIs(t *testing.T, description string, expected error, actual error) {
	if !errors.Is(actual, expected) {
		t.Errorf(
			"unexpected error from %s\nexpected: %v\nactual:   %v\n",
			description,
			expected,
			actual,
		)
	}
}

// AssertPanics checks that the provided function panics. If the
// function returns normally, it reports a test failure.
func AssertPanics(t *testing.T, description string, fn func()) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected %s to panic", description)
		}
	}()

	fn()
}
