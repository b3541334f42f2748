package polytope

import (
	"fmt"

	"github.com/HactarCE/coxeter/vecmath"
)

// Arena is a growable slot table of ranked cells forming a polytope's face
// lattice. Allocation is append-only; a slice pass may empty slots but
// never reuses their handles.
type Arena struct {
	ndim  int
	root  ID
	nodes []*node // nil marks a deleted slot
}

// NewCube builds the complete face lattice of an axis-aligned hypercube of
// the given radius centered at the origin.
//
// Construction enumerates all base-3 strings of length ndim: a digit of 1
// means "this axis is unconstrained at this cell" (contributing to rank),
// 0/2 mean "fixed at −radius/+radius". Cell rank = count of 1 digits.
// Children differ by collapsing one unconstrained axis to either end;
// parents differ by freeing one constrained axis. The all-1 cell is the
// root, of rank ndim. Complexity: O(3^ndim · ndim).
func NewCube(ndim int, radius float64) (*Arena, error) {
	if ndim < 1 || ndim > MaxNdim {
		return nil, fmt.Errorf("ndim %d: %w", ndim, ErrDimension)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("radius %g: %w", radius, ErrRadius)
	}

	total := 1
	for i := 0; i < ndim; i++ {
		total *= 3
	}
	a := &Arena{
		ndim:  ndim,
		root:  ID((total - 1) / 2), // the all-1 digit string
		nodes: make([]*node, 0, total),
	}

	for i := 0; i < total; i++ {
		digits := base3(i, ndim)
		rank := 0
		for _, d := range digits {
			if d == 1 {
				rank++
			}
		}

		var c contents
		if rank == 0 {
			// A vertex: every axis fixed at ±radius.
			at := make(vecmath.Vector, ndim)
			for axis, d := range digits {
				at[axis] = (float64(d) - 1) * radius
			}
			c = point{at: at}
		} else {
			// A branch: two children along each unconstrained axis.
			children := make([]ID, 0, 2*rank)
			pow := 1
			for _, d := range digits {
				if d == 1 {
					children = append(children, ID(i-pow), ID(i+pow))
				}
				pow *= 3
			}
			c = branch{r: rank, children: children}
		}

		// One parent per constrained axis: the cell with that axis freed.
		var parents []ID
		pow := 1
		for _, d := range digits {
			if d != 1 {
				parents = append(parents, ID(i-pow*d+pow))
			}
			pow *= 3
		}

		a.nodes = append(a.nodes, &node{parents: parents, contents: c})
	}

	return a, nil
}

// Ndim returns the arena's working dimension.
func (a *Arena) Ndim() int { return a.ndim }

// Root returns the handle of the full-dimensional cell.
func (a *Arena) Root() ID { return a.root }

// Len returns the number of live (non-deleted) nodes.
func (a *Arena) Len() int {
	n := 0
	for _, nd := range a.nodes {
		if nd != nil {
			n++
		}
	}
	return n
}

// CountRank returns the number of live cells of the given rank.
func (a *Arena) CountRank(rank int) int {
	n := 0
	for _, nd := range a.nodes {
		if nd != nil && nd.rank() == rank {
			n++
		}
	}
	return n
}

// push appends a node and returns its new handle.
func (a *Arena) push(n *node) ID {
	a.nodes = append(a.nodes, n)
	return ID(len(a.nodes) - 1)
}

// pushPoint appends a parentless vertex.
func (a *Arena) pushPoint(at vecmath.Vector) ID {
	return a.push(&node{contents: point{at: at}})
}

// pushBranch appends a branch one rank above its children and registers
// itself as their parent. All children must share a rank.
func (a *Arena) pushBranch(children []ID) (ID, error) {
	if len(children) == 0 {
		return 0, ErrNoChildren
	}
	rank := a.nodes[children[0]].rank() + 1
	id := a.push(&node{contents: branch{r: rank, children: children}})
	for _, child := range children {
		if a.nodes[child].rank()+1 != rank {
			return 0, fmt.Errorf("child %d under %d: %w", child, id, ErrRankMismatch)
		}
		a.nodes[child].parents = append(a.nodes[child].parents, id)
	}
	return id, nil
}

// base3 returns the ndim least-significant base-3 digits of n, least
// significant first.
func base3(n, ndim int) []int {
	digits := make([]int, ndim)
	for i := 0; i < ndim; i++ {
		digits[i] = n % 3
		n /= 3
	}
	return digits
}
