package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HactarCE/coxeter/vecmath"
)

// TestVectorAdd verifies zero-padded addition across mismatched lengths.
func TestVectorAdd(t *testing.T) {
	v1 := vecmath.Vector{1, 2, -10}
	v2 := vecmath.Vector{-5}
	assert.Equal(t, vecmath.Vector{-4, 2, -10}, v1.Add(v2), "long + short")
	assert.Equal(t, vecmath.Vector{-4, 2, -10}, v2.Add(v1), "short + long")
}

// TestVectorSub verifies zero-padded subtraction across mismatched lengths.
func TestVectorSub(t *testing.T) {
	v1 := vecmath.Vector{1, 2, -10}
	v2 := vecmath.Vector{-5}
	assert.Equal(t, vecmath.Vector{6, 2, -10}, v1.Sub(v2))
	assert.Equal(t, vecmath.Vector{-6, -2, 10}, v2.Sub(v1))
}

// TestVectorNeg verifies componentwise negation.
func TestVectorNeg(t *testing.T) {
	v := vecmath.Vector{1, 2, -10}
	assert.Equal(t, vecmath.Vector{-1, -2, 10}, v.Neg())
}

// TestVectorDot verifies the zero-padded dot product.
func TestVectorDot(t *testing.T) {
	v1 := vecmath.Vector{1, 2, -10}
	v2 := vecmath.Vector{-5, 16}
	assert.Equal(t, 27.0, v1.Dot(v2))
	assert.Equal(t, 27.0, v2.Dot(v1))
}

// TestVectorGetSet verifies zero-extension on reads and auto-grow on writes.
func TestVectorGetSet(t *testing.T) {
	v := vecmath.Vector{1, 2}
	assert.Equal(t, 0.0, v.Get(5), "read beyond length is zero")
	assert.Equal(t, 0.0, v.Get(-1), "negative index is zero")

	v.Set(4, 7)
	assert.Equal(t, vecmath.Vector{1, 2, 0, 0, 7}, v, "Set grows with zeros")
}

// TestVectorUnit verifies unit-vector construction and magnitude helpers.
func TestVectorUnit(t *testing.T) {
	u := vecmath.Unit(2)
	assert.Equal(t, vecmath.Vector{0, 0, 1}, u)
	assert.Equal(t, 1.0, u.Mag())
	assert.Equal(t, 1.0, u.Mag2())
}

// TestVectorApproxEq verifies tolerance-based comparison with padding.
func TestVectorApproxEq(t *testing.T) {
	cases := []struct {
		name string
		a, b vecmath.Vector
		want bool
	}{
		{"Identical", vecmath.Vector{1, 2}, vecmath.Vector{1, 2}, true},
		{"WithinEpsilon", vecmath.Vector{1, 2}, vecmath.Vector{1.0005, 2}, true},
		{"BeyondEpsilon", vecmath.Vector{1, 2}, vecmath.Vector{1.01, 2}, false},
		{"PaddedZeros", vecmath.Vector{1, 0, 0}, vecmath.Vector{1}, true},
		{"PaddedNonzero", vecmath.Vector{1, 0, 0.5}, vecmath.Vector{1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.ApproxEq(tc.b))
			assert.Equal(t, tc.want, tc.b.ApproxEq(tc.a))
		})
	}
}

// TestVectorPadTruncate verifies copy semantics of Pad and Truncate.
func TestVectorPadTruncate(t *testing.T) {
	v := vecmath.Vector{1, 2, 3}
	assert.Equal(t, vecmath.Vector{1, 2, 3, 0, 0}, v.Pad(5))
	assert.Equal(t, vecmath.Vector{1, 2}, v.Truncate(2))
	assert.Equal(t, vecmath.Vector{1, 2, 3}, v.Truncate(9), "truncate never grows")
	assert.Equal(t, vecmath.Vector{1, 2, 3}, v, "original untouched")
}
