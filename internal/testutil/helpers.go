// Package testutil provides reusable test helper functions for filter tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Float is the type constraint accepted by the helpers.
type Float interface {
	float32 | float64
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic[F Float](t *testing.T, s []F, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonic: s[%d]=%v < s[%d]=%v", i, s[i], i-1, s[i-1]),
				msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange[F Float](t *testing.T, s []F, minVal, maxVal F, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("s[%d]=%v is outside range [%v, %v]", i, v, minVal, maxVal),
				msgAndArgs...)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange[F Float](t *testing.T, value, minVal, maxVal F, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %v is outside range [%v, %v]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertPointInDelta verifies that (x, y) is within delta of (wantX, wantY) on both axes.
func AssertPointInDelta[F Float](t *testing.T, wantX, wantY, x, y F, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	okX := assert.InDelta(t, float64(wantX), float64(x), delta, msgAndArgs...)
	okY := assert.InDelta(t, float64(wantY), float64(y), delta, msgAndArgs...)
	return okX && okY
}
