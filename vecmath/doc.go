// Package vecmath provides the fixed-tolerance linear-algebra primitives
// used by the diagram, group, and polytope packages.
//
// What:
//
//   - Vector: an ordered sequence of float64 scalars, conceptually
//     zero-extended — combining or comparing vectors of different lengths
//     pads the shorter with zeros.
//   - Matrix: a square ndim×ndim matrix in column-major storage. Indices at
//     or beyond ndim read as an implicit identity (diagonal 1, off-diagonal
//     0), so matrices of different sizes compose and compare as if embedded
//     in a common larger space.
//   - Epsilon: the single absolute componentwise tolerance governing all
//     approximate equality in the module.
//
// Why:
//
//   - Symmetry-group enumeration deduplicates matrices by approximate
//     equality; a single shared tolerance keeps discovery and termination
//     consistent across packages.
//   - Zero-extension lets an n-dimensional mirror act on an m-dimensional
//     point without explicit resizing at every call site.
//
// Complexity:
//
//   - Vector ops: O(n). Matrix Mul/Transform: O(n²)–O(n³).
//   - Determinant/Inverse: O(n³) Gaussian elimination (n ≤ 8 in practice).
//
// Errors:
//
//   - ErrSingularMatrix: Inverse of a matrix with a zero pivot.
package vecmath
