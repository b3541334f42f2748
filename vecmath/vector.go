package vecmath

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an ordered sequence of scalars, zero-extended when compared or
// combined with a vector of a different length. The zero value is the empty
// vector, which behaves as the origin in every dimension.
type Vector []float64

// Unit returns the unit vector along the given axis, of length axis+1.
func Unit(axis int) Vector {
	v := make(Vector, axis+1)
	v[axis] = 1
	return v
}

// Ndim returns the declared number of dimensions (the stored length).
// Complexity: O(1).
func (v Vector) Ndim() int { return len(v) }

// Get returns the component at idx, or zero beyond the declared length.
// Complexity: O(1).
func (v Vector) Get(idx int) float64 {
	if idx < 0 || idx >= len(v) {
		return 0
	}
	return v[idx]
}

// Set stores x at idx, growing the vector with zeros as needed.
// Complexity: O(1) amortized.
func (v *Vector) Set(idx int, x float64) {
	for len(*v) <= idx {
		*v = append(*v, 0)
	}
	(*v)[idx] = x
}

// Dot returns the zero-padded dot product of v and w.
// Complexity: O(min(n,m)).
func (v Vector) Dot(w Vector) float64 {
	n := len(v)
	if len(w) < n {
		n = len(w)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += v[i] * w[i]
	}
	return sum
}

// Add returns v + w, zero-padded to the larger length.
func (v Vector) Add(w Vector) Vector {
	n := maxInt(len(v), len(w))
	out := make(Vector, n)
	for i := range out {
		out[i] = v.Get(i) + w.Get(i)
	}
	return out
}

// Sub returns v − w, zero-padded to the larger length.
func (v Vector) Sub(w Vector) Vector {
	n := maxInt(len(v), len(w))
	out := make(Vector, n)
	for i := range out {
		out[i] = v.Get(i) - w.Get(i)
	}
	return out
}

// Neg returns −v.
func (v Vector) Neg() Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = -v[i]
	}
	return out
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Mag2 returns the squared magnitude of v.
func (v Vector) Mag2() float64 { return v.Dot(v) }

// Mag returns the magnitude of v.
func (v Vector) Mag() float64 { return math.Sqrt(v.Mag2()) }

// Pad returns a copy of v extended with zeros to at least ndim components.
func (v Vector) Pad(ndim int) Vector {
	n := maxInt(len(v), ndim)
	out := make(Vector, n)
	copy(out, v)
	return out
}

// Truncate returns a copy of v with at most ndim components.
func (v Vector) Truncate(ndim int) Vector {
	if ndim > len(v) {
		ndim = len(v)
	}
	out := make(Vector, ndim)
	copy(out, v)
	return out
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// ApproxEq reports componentwise equality within Epsilon, zero-padded to
// the larger length. Complexity: O(max(n,m)).
func (v Vector) ApproxEq(w Vector) bool {
	n := maxInt(len(v), len(w))
	for i := 0; i < n; i++ {
		if !ApproxEq(v.Get(i), w.Get(i)) {
			return false
		}
	}
	return true
}

// String renders v as "(x0, x1, …)".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
