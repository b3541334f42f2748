// Package coxeter generates the combinatorial and geometric structure of
// convex polytopes defined by a reflection (Coxeter) symmetry group and a
// set of seed half-spaces — in any dimension up to eight.
//
// 🚀 What is coxeter?
//
//	A pure in-process library that brings together:
//		• vecmath/  — zero-padded vectors & implicit-identity square matrices
//		• diagram/  — linear Coxeter diagrams → mirror normals → reflections
//		• group/    — Cayley-graph closure: every element, its matrix,
//		              decomposition, successors and inverse
//		• polytope/ — hypercube face lattices, iterative half-space slicing,
//		              ordered polygon extraction
//
// ✨ Why choose coxeter?
//
//   - Handle-based — groups and cell complexes are flat indexed tables,
//     never pointer-aliased graphs
//   - Deterministic — every construction is a pure function of its inputs
//   - Pure Go — no cgo, no hidden deps
//
// Typical pipeline:
//
//	cd, _ := diagram.New([]int{4, 3})       // cubic symmetry, order 48
//	g, _ := cd.Group()                      // enumerate all 48 elements
//	polys, _ := polytope.ShapeGeom(g,       // slice a cube out of its orbit
//	    []vecmath.Vector{vecmath.Unit(0)})
//
// yields the six square faces of a cube, as ordered vertex loops ready for
// projection and rendering.
//
// See cmd/coxeterdemo for an end-to-end command-line pipeline.
package coxeter
