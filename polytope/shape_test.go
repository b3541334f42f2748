package polytope_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HactarCE/coxeter/diagram"
	"github.com/HactarCE/coxeter/group"
	"github.com/HactarCE/coxeter/polytope"
	"github.com/HactarCE/coxeter/vecmath"
)

// cubicGroup enumerates the [4,3] reflection group (order 48).
func cubicGroup(t *testing.T) *group.Group {
	t.Helper()
	cd, err := diagram.New([]int{4, 3})
	require.NoError(t, err)
	g, err := cd.Group()
	require.NoError(t, err)
	return g
}

// TestPoles verifies orbit expansion of seed facet normals.
func TestPoles(t *testing.T) {
	g := cubicGroup(t)

	poles, err := polytope.Poles(g, []vecmath.Vector{vecmath.Unit(0)})
	require.NoError(t, err)
	assert.Len(t, poles, 6, "axis seed orbits to the six signed axes")

	_, err = polytope.Poles(g, nil)
	assert.ErrorIs(t, err, polytope.ErrNoPoles)
	_, err = polytope.Poles(g, []vecmath.Vector{{0, 0, 0}})
	assert.ErrorIs(t, err, polytope.ErrZeroPole)
}

// TestShapeGeomCube verifies cubic symmetry with an axis seed facet yields
// a cube: six square faces with every coordinate at ±1.
func TestShapeGeomCube(t *testing.T) {
	g := cubicGroup(t)

	polys, err := polytope.ShapeGeom(g, []vecmath.Vector{vecmath.Unit(0)})
	require.NoError(t, err)
	require.Len(t, polys, 6)

	for i, p := range polys {
		assert.Len(t, p.Verts, 4, "face %d", i)
		for _, v := range p.Verts {
			for axis := 0; axis < 3; axis++ {
				assert.InDelta(t, 1.0, math.Abs(v.Get(axis)), 1e-6,
					"face %d vertex %v", i, v)
			}
		}
	}
}

// TestShapeGeomOctahedron verifies the body-diagonal seed yields the dual
// octahedron: eight triangular faces.
func TestShapeGeomOctahedron(t *testing.T) {
	g := cubicGroup(t)

	polys, err := polytope.ShapeGeom(g, []vecmath.Vector{{1, 1, 1}})
	require.NoError(t, err)
	require.Len(t, polys, 8)

	for i, p := range polys {
		assert.Len(t, p.Verts, 3, "face %d", i)
	}
}
