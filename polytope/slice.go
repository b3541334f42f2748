package polytope

import (
	"fmt"

	"github.com/HactarCE/coxeter/vecmath"
)

// sliceState is the transient per-node classification during one slicing
// pass. Transitions are single-shot: unknown → {kept, removed, modified}.
type sliceState uint8

const (
	stateUnknown sliceState = iota
	stateKept
	stateRemoved
	stateModified
)

// classification pairs a state with, for modified cells, the handle of the
// synthesized boundary cell.
type classification struct {
	state    sliceState
	boundary ID
}

// slicer holds the scratch state of one slicing pass: the side table of
// classifications, reset (discarded) when the pass ends, so the arena's
// steady-state invariant — no classification observable between public
// calls — holds by construction.
type slicer struct {
	arena   *Arena
	pole    vecmath.Vector
	classes []classification
}

// SliceByPlane intersects the arena in place with the half-space
// {x : (pole − x)·pole ≤ 0} — everything on the origin side of the
// hyperplane through pole and perpendicular to it.
//
// Every node is classified recursively from the root; removed slots are
// emptied only after the full pass so no handle is invalidated while still
// referenced. A live node left unclassified is unreachable from the root
// and reported as ErrOrphanNode. Complexity: O(nodes + new cells).
func (a *Arena) SliceByPlane(pole vecmath.Vector) error {
	if a.nodes[a.root] == nil {
		return ErrEmptyArena
	}
	s := &slicer{
		arena:   a,
		pole:    pole,
		classes: make([]classification, len(a.nodes)),
	}
	if _, err := s.classify(a.root); err != nil {
		return err
	}

	// Deferred deletion + orphan audit. New cells created during the pass
	// were marked kept at creation.
	for idx := range a.nodes {
		if a.nodes[idx] == nil {
			continue
		}
		switch s.classes[idx].state {
		case stateRemoved:
			a.nodes[idx] = nil
		case stateUnknown:
			return fmt.Errorf("node %d: %w", idx, ErrOrphanNode)
		}
	}
	return nil
}

// distance is the signed height of x above the slicing hyperplane:
// positive strictly inside the kept half-space, zero on the plane.
func (s *slicer) distance(x vecmath.Vector) float64 {
	return s.pole.Mag2() - x.Dot(s.pole)
}

// classify computes (and memoizes) the classification of one node,
// recursing over children first for branches.
func (s *slicer) classify(id ID) (classification, error) {
	if c := s.classes[id]; c.state != stateUnknown {
		return c, nil
	}

	var c classification
	switch cont := s.arena.nodes[id].contents.(type) {
	case point:
		if s.distance(cont.at) > -vecmath.Epsilon {
			c = classification{state: stateKept}
		} else {
			c = classification{state: stateRemoved}
		}

	case branch:
		var err error
		if c, err = s.classifyBranch(id, cont); err != nil {
			return classification{}, err
		}

	default:
		return classification{}, fmt.Errorf("node %d has unknown contents: %w", id, ErrRankMismatch)
	}

	s.setClass(id, c)
	return c, nil
}

// classifyBranch classifies every child, drops the removed ones, and
// synthesizes the intersection boundary when the hyperplane cuts through.
func (s *slicer) classifyBranch(id ID, b branch) (classification, error) {
	var (
		kept     = make([]ID, 0, len(b.children))
		boundary []ID
		removed  bool
	)
	for _, child := range b.children {
		cc, err := s.classify(child)
		if err != nil {
			return classification{}, err
		}
		switch cc.state {
		case stateRemoved:
			removed = true
		case stateModified:
			kept = append(kept, child)
			boundary = append(boundary, cc.boundary)
		default:
			kept = append(kept, child)
		}
	}

	if len(kept) == 0 {
		return classification{state: stateRemoved}, nil
	}
	if !removed && len(boundary) == 0 {
		return classification{state: stateKept}, nil
	}

	// The hyperplane cuts this cell: synthesize the rank−1 boundary cell
	// where the plane meets it.
	var newID ID
	if b.r == 1 {
		var err error
		if newID, err = s.cutEdge(b); err != nil {
			return classification{}, err
		}
	} else {
		if len(boundary) == 0 {
			return classification{}, fmt.Errorf("cell %d: %w", id, ErrDegenerateCut)
		}
		var err error
		if newID, err = s.arena.pushBranch(boundary); err != nil {
			return classification{}, err
		}
		if s.arena.nodes[newID].rank() != b.r-1 {
			return classification{}, fmt.Errorf("boundary of cell %d: %w", id, ErrRankMismatch)
		}
	}
	s.setClass(newID, classification{state: stateKept})

	s.arena.nodes[newID].parents = append(s.arena.nodes[newID].parents, id)
	s.arena.nodes[id].contents = branch{r: b.r, children: append(kept, newID)}

	return classification{state: stateModified, boundary: newID}, nil
}

// cutEdge interpolates the point where the hyperplane crosses an edge with
// one endpoint kept and one removed: the exact linear interpolation of the
// endpoints weighted by their signed heights, so the new point lies on the
// plane.
func (s *slicer) cutEdge(edge branch) (ID, error) {
	var (
		keptAt, removedAt vecmath.Vector
		haveKept, haveRem bool
	)
	for _, child := range edge.children {
		pt, ok := s.arena.nodes[child].contents.(point)
		if !ok {
			return 0, fmt.Errorf("edge child %d: %w", child, ErrRankMismatch)
		}
		if s.classes[child].state == stateRemoved {
			removedAt, haveRem = pt.at, true
		} else {
			keptAt, haveKept = pt.at, true
		}
	}
	if !haveKept || !haveRem {
		return 0, fmt.Errorf("cut edge lacks a kept/removed endpoint pair: %w", ErrDegenerateCut)
	}

	ha := s.distance(keptAt)    // ≥ −ε
	hb := s.distance(removedAt) // < −ε
	at := removedAt.Scale(ha).Sub(keptAt.Scale(hb)).Scale(1 / (ha - hb))
	return s.arena.pushPoint(at), nil
}

// setClass records a classification, growing the side table to cover cells
// allocated during this pass.
func (s *slicer) setClass(id ID, c classification) {
	for len(s.classes) <= int(id) {
		s.classes = append(s.classes, classification{})
	}
	s.classes[id] = c
}
