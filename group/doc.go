// Package group enumerates finite matrix groups as Cayley graphs.
//
// What:
//
//   - FromGenerators performs worklist closure over a set of generator
//     matrices: starting from the identity, every element is composed with
//     every generator until no new matrix appears (up to the fixed
//     vecmath.Epsilon tolerance).
//   - The result is a flat table indexed by Element handles: each
//     element's matrix, its discovery decomposition into generators, a
//     per-generator successor map, and its inverse.
//   - Compose multiplies two element handles purely through the successor
//     table — matrices are never re-derived after closure.
//   - Orbit closes a vector under the generator action, deduplicating by
//     approximate equality.
//
// Why:
//
//   - Reflection groups from Coxeter diagrams are the symmetry engine for
//     polytope construction: the orbit of a seed facet normal under the
//     group yields the full set of bounding half-spaces.
//
// Termination:
//
//	Closure terminates only for finite groups. A configurable element
//	limit (WithMaxElements, default 65536) turns a misconfigured infinite
//	generator set into ErrTooManyElements instead of an unbounded loop.
//
// Complexity:
//
//	O(order² · g) matrix comparisons for closure with g generators;
//	Compose is O(len(decomposition)).
//
// Errors:
//
//   - ErrNoGenerators: FromGenerators called with an empty slice.
//   - ErrTooManyElements: closure exceeded the element limit.
//   - ErrInverseResolution: internal consistency failure while deriving
//     inverses — indicates a closure defect, never a user input error.
package group
