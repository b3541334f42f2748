// Package polytope builds convex polytopes by iterative half-space
// slicing over an arena of ranked cells.
//
// What:
//
//   - Arena is an owned, indexed graph of cell elements: rank 0 = vertex,
//     rank 1 = edge, …, rank ndim = the whole polytope. Nodes live in a
//     growable slot table addressed by opaque ID handles; handles are
//     never reused, and deletion only empties a slot after a slicing pass
//     completes.
//   - NewCube constructs the full face lattice of an axis-aligned
//     hypercube in one pass via a base-3 digit encoding.
//   - SliceByPlane intersects the arena with a half-space in place,
//     classifying every cell (kept / removed / modified) and synthesizing
//     the boundary cells where the hyperplane cuts.
//   - Polygons walks each surviving rank-2 cell's edge cycle into an
//     ordered vertex loop ready for projection and rendering.
//   - ShapeGeom is the end-to-end pipeline: orbit the seed facet normals
//     under a symmetry group, start from a safely oversized cube, slice
//     once per orbit vector, extract polygons.
//
// Why:
//
//   - Index-based ownership replaces parent/child reference cycles with a
//     single flat table, so the cell complex stays mutation-safe without
//     aliasing.
//
// Errors:
//
//	User errors: ErrDimension, ErrRadius, ErrNoPoles, ErrZeroPole.
//	Invariant violations (internal defects, fail fast): ErrOrphanNode,
//	ErrOpenLoop, ErrRankMismatch, ErrNoChildren, ErrDegenerateCut,
//	ErrEmptyArena.
package polytope
