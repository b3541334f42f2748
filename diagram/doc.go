// Package diagram translates linear Coxeter diagrams into mirror
// hyperplanes and reflection generator matrices.
//
// What:
//
//   - Diagram wraps an ordered chain of edge labels; a label k encodes the
//     dihedral angle π/k between consecutive mirrors (label 2 means the
//     mirrors are perpendicular).
//   - Mirrors() derives one unit mirror-normal vector per hyperplane; a
//     diagram with n edges describes n+1 mirrors in n+1 dimensions.
//   - Generators() converts each mirror v into its reflection matrix
//     R(v) = I − 2·v·vᵀ.
//   - Group() enumerates the finite group those reflections generate.
//   - PoleBasis() is the change-of-basis matrix mapping facet coordinates
//     expressed against the mirrors into world space.
//
// Why:
//
//   - Coxeter diagrams are the standard compact notation for reflection
//     symmetry groups; [4,3] is the cube's symmetry, [5,3] the
//     icosahedron's.
//
// Construction exploits the chain structure: each mirror is perpendicular
// to all but its immediate neighbors, so mirror i+1 is supported on axes
// i and i+1 only and is fixed by its dot product with mirror i.
//
// Errors:
//
//   - ErrEdgeLabel: an edge label ≤ 1 was supplied (labels of 0 or 1 have
//     no geometric meaning and would divide by zero).
//   - ErrNoEdges: the diagram has no edges at all.
package diagram
