package vecmath

import "math"

// Epsilon is the absolute componentwise tolerance used by every approximate
// comparison in this module. It governs both uniqueness of discovered group
// elements and slicing classification: too coarse merges distinct elements,
// too fine fails to terminate group closure.
const Epsilon = 1e-3

// ApproxEq reports whether a and b differ by less than Epsilon.
// Complexity: O(1).
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
