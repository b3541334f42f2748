package diagram

import (
	"errors"
	"fmt"
	"math"

	"github.com/HactarCE/coxeter/group"
	"github.com/HactarCE/coxeter/vecmath"
)

var (
	// ErrEdgeLabel indicates an edge label ≤ 1, which has no geometric
	// meaning and must be rejected before construction.
	ErrEdgeLabel = errors.New("diagram: edge label must be greater than 1")

	// ErrNoEdges indicates an empty label sequence.
	ErrNoEdges = errors.New("diagram: at least one edge label required")
)

// Diagram is a linear Coxeter diagram with unlabeled vertices: a chain of
// edge labels, each the denominator of a dihedral angle π/label between
// consecutive mirrors. Immutable once built.
type Diagram struct {
	edges []int
}

// New validates the label chain and returns a Diagram. Every label must be
// > 1; a copy of edges is taken. Returns ErrNoEdges or ErrEdgeLabel.
func New(edges []int) (*Diagram, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	for i, e := range edges {
		if e <= 1 {
			return nil, fmt.Errorf("edge %d has label %d: %w", i, e, ErrEdgeLabel)
		}
	}
	own := make([]int, len(edges))
	copy(own, edges)
	return &Diagram{edges: own}, nil
}

// Ndim returns the number of dimensions described by the diagram's group:
// one more than the number of edges.
func (d *Diagram) Ndim() int { return len(d.edges) + 1 }

// Mirrors derives the unit normal vector of every mirror hyperplane.
//
// The mirror normals form a banded pattern, each row a vector:
//
//	[ ? 0 0 0 0 ]
//	[ ? ? 0 0 0 ]
//	[ 0 ? ? 0 0 ]
//	[ 0 0 ? ? 0 ]
//	[ 0 0 0 ? ? ]
//
// Each mirror is perpendicular to all the others except its neighbors, so
// computing the next mirror only needs the previous one: the shared axis
// value is fixed by the required dot product cos(π/edge), and the next
// axis value restores unit length. Complexity: O(n²) in storage of the
// returned slice, O(n) arithmetic.
func (d *Diagram) Mirrors() []Mirror {
	mirrors := make([]Mirror, 0, d.Ndim())
	last := vecmath.Unit(0)
	for i, edge := range d.edges {
		mirrors = append(mirrors, Mirror(last.Clone()))
		// Only the axis shared with the previous mirror affects the dot
		// product.
		q := last.Get(i)
		y := math.Cos(math.Pi/float64(edge)) / q
		z := math.Sqrt(1 - y*y)
		last = vecmath.Vector{}
		last.Set(i, y)
		last.Set(i+1, z)
	}
	mirrors = append(mirrors, Mirror(last))
	return mirrors
}

// Generators returns one reflection matrix per mirror, in diagram order.
func (d *Diagram) Generators() []vecmath.Matrix {
	mirrors := d.Mirrors()
	gens := make([]vecmath.Matrix, len(mirrors))
	for i, m := range mirrors {
		gens[i] = m.Reflection()
	}
	return gens
}

// Group enumerates the finite group generated by the diagram's
// reflections. Options are forwarded to group.FromGenerators.
func (d *Diagram) Group(opts ...group.Option) (*group.Group, error) {
	return group.FromGenerators(d.Generators(), opts...)
}

// PoleBasis returns the change-of-basis matrix that maps a facet vector
// expressed in mirror coordinates into world space: the mirrors in reverse
// order as columns, inverted, transposed. Fails with
// vecmath.ErrSingularMatrix only if the mirrors are degenerate, which a
// validated diagram never produces.
func (d *Diagram) PoleBasis() (vecmath.Matrix, error) {
	mirrors := d.Mirrors()
	cols := make([]vecmath.Vector, len(mirrors))
	for i, m := range mirrors {
		cols[len(mirrors)-1-i] = vecmath.Vector(m).Pad(d.Ndim())
	}
	inv, err := vecmath.FromCols(cols).Inverse()
	if err != nil {
		return vecmath.Matrix{}, fmt.Errorf("diagram: pole basis: %w", err)
	}
	return inv.Transpose(), nil
}
