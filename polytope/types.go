package polytope

import (
	"errors"

	"github.com/HactarCE/coxeter/vecmath"
)

// MaxNdim is the practical dimension cap for arena construction; the
// base-3 lattice grows as 3^ndim nodes.
const MaxNdim = 8

// User-input sentinel errors.
var (
	// ErrDimension indicates an ndim outside [1, MaxNdim].
	ErrDimension = errors.New("polytope: dimension must be between 1 and 8")
	// ErrRadius indicates a non-positive cube radius.
	ErrRadius = errors.New("polytope: radius must be positive")
	// ErrNoPoles indicates ShapeGeom was given no seed facet normals.
	ErrNoPoles = errors.New("polytope: at least one seed facet normal required")
	// ErrZeroPole indicates a (near-)zero-magnitude pole, which defines no
	// half-space.
	ErrZeroPole = errors.New("polytope: pole vector has zero magnitude")
)

// Invariant-violation sentinel errors. These indicate a defect in the
// construction itself; there is no safe partial result once one occurs.
var (
	// ErrOrphanNode indicates a live node unreachable from the root during
	// a slicing pass.
	ErrOrphanNode = errors.New("polytope: orphan node after slice pass")
	// ErrOpenLoop indicates a rank-2 cell whose edges do not form a single
	// closed cycle.
	ErrOpenLoop = errors.New("polytope: face edges do not form a single cycle")
	// ErrRankMismatch indicates a child whose rank is not its parent's
	// rank minus one.
	ErrRankMismatch = errors.New("polytope: mismatched child rank")
	// ErrNoChildren indicates an attempt to build a branch cell with no
	// children.
	ErrNoChildren = errors.New("polytope: branch cell requires children")
	// ErrDegenerateCut indicates a modified cell produced no intersection
	// boundary, which only an epsilon-degenerate input can cause.
	ErrDegenerateCut = errors.New("polytope: cut produced no boundary")
	// ErrEmptyArena indicates an operation on an arena whose root has been
	// removed by a previous slice.
	ErrEmptyArena = errors.New("polytope: arena is empty")
)

// ID is an opaque handle into an Arena's slot table. Slots are never
// reused; a deleted slot stays empty forever.
type ID int

// node is one arena slot: parent links plus rank-tagged contents.
type node struct {
	parents  []ID
	contents contents
}

func (n *node) rank() int { return n.contents.rank() }

// contents is the sum type over node kinds: a coordinate point (rank 0)
// or a branch with children one rank below.
type contents interface {
	rank() int
}

// point is a rank-0 cell: a vertex coordinate.
type point struct {
	at vecmath.Vector
}

func (point) rank() int { return 0 }

// branch is a rank ≥ 1 cell owning children of rank−1.
type branch struct {
	r        int
	children []ID
}

func (b branch) rank() int { return b.r }

// Polygon is an ordered vertex loop extracted from a rank-2 cell.
type Polygon struct {
	Verts []vecmath.Vector
}
