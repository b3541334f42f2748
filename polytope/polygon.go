package polytope

import (
	"fmt"

	"github.com/HactarCE/coxeter/vecmath"
)

// Polygons extracts an ordered vertex loop from every surviving rank-2
// cell. A face whose edges do not form a single closed cycle is an
// internal invariant violation, reported as ErrOpenLoop.
func (a *Arena) Polygons() ([]Polygon, error) {
	if a.nodes[a.root] == nil {
		return nil, ErrEmptyArena
	}
	var polys []Polygon
	for idx, n := range a.nodes {
		if n == nil {
			continue
		}
		b, ok := n.contents.(branch)
		if !ok || b.r != 2 {
			continue
		}
		poly, err := a.faceLoop(b)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", idx, err)
		}
		polys = append(polys, poly)
	}
	return polys, nil
}

// faceLoop walks a face's boundary: map each vertex to its two neighbors
// across the face's edges, then follow neighbors — always away from the
// vertex just visited — until the walk returns to its start.
func (a *Arena) faceLoop(face branch) (Polygon, error) {
	adjacency := make(map[ID][]ID, len(face.children))
	for _, e := range face.children {
		edge, ok := a.nodes[e].contents.(branch)
		if !ok || edge.r != 1 || len(edge.children) != 2 {
			return Polygon{}, fmt.Errorf("edge %d: %w", e, ErrRankMismatch)
		}
		v0, v1 := edge.children[0], edge.children[1]
		adjacency[v0] = append(adjacency[v0], v1)
		adjacency[v1] = append(adjacency[v1], v0)
	}
	for v, ns := range adjacency {
		if len(ns) != 2 {
			return Polygon{}, fmt.Errorf("vertex %d has %d face edges: %w", v, len(ns), ErrOpenLoop)
		}
	}

	first, ok := a.nodes[face.children[0]].contents.(branch)
	if !ok {
		return Polygon{}, ErrRankMismatch
	}
	start, cur := first.children[0], first.children[1]
	loop := []ID{start, cur}
	for {
		ns := adjacency[cur]
		next := ns[0]
		if next == loop[len(loop)-2] {
			next = ns[1]
		}
		if next == start {
			break
		}
		loop = append(loop, next)
		if len(loop) > len(adjacency) {
			return Polygon{}, fmt.Errorf("walk never closed: %w", ErrOpenLoop)
		}
		cur = next
	}
	if len(loop) != len(adjacency) {
		return Polygon{}, fmt.Errorf("walk closed after %d of %d vertices: %w",
			len(loop), len(adjacency), ErrOpenLoop)
	}

	verts := make([]vecmath.Vector, len(loop))
	for i, v := range loop {
		pt, ok := a.nodes[v].contents.(point)
		if !ok {
			return Polygon{}, fmt.Errorf("vertex %d: %w", v, ErrRankMismatch)
		}
		verts[i] = pt.at.Clone()
	}
	return Polygon{Verts: verts}, nil
}
