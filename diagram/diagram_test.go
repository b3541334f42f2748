package diagram_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HactarCE/coxeter/diagram"
	"github.com/HactarCE/coxeter/vecmath"
)

// TestNewRejectsBadLabels verifies the user-error class: labels ≤ 1 and
// empty diagrams are rejected up front.
func TestNewRejectsBadLabels(t *testing.T) {
	cases := []struct {
		name  string
		edges []int
		err   error
	}{
		{"Empty", nil, diagram.ErrNoEdges},
		{"LabelZero", []int{4, 0}, diagram.ErrEdgeLabel},
		{"LabelOne", []int{1}, diagram.ErrEdgeLabel},
		{"NegativeLabel", []int{-3, 4}, diagram.ErrEdgeLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := diagram.New(tc.edges)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNdim verifies a diagram with n edges spans n+1 dimensions.
func TestNdim(t *testing.T) {
	cd, err := diagram.New([]int{4, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 4, cd.Ndim())
}

// TestMirrors verifies the chain construction: unit normals, the required
// dot product between neighbors, and perpendicularity everywhere else.
func TestMirrors(t *testing.T) {
	edges := []int{5, 3, 2, 4}
	cd, err := diagram.New(edges)
	require.NoError(t, err)

	mirrors := cd.Mirrors()
	require.Len(t, mirrors, cd.Ndim())

	for i, m := range mirrors {
		v := m.Normal()
		assert.InDelta(t, 1.0, v.Mag(), 1e-6, "mirror %d is unit length", i)
		for j := i + 1; j < len(mirrors); j++ {
			dot := v.Dot(mirrors[j].Normal())
			if j == i+1 {
				want := math.Cos(math.Pi / float64(edges[i]))
				assert.InDelta(t, want, dot, 1e-6, "mirrors %d,%d dihedral", i, j)
			} else {
				assert.InDelta(t, 0.0, dot, 1e-6, "mirrors %d,%d perpendicular", i, j)
			}
		}
	}
}

// TestMirrorsLabelTwo verifies label 2 yields perpendicular neighbors.
func TestMirrorsLabelTwo(t *testing.T) {
	cd, err := diagram.New([]int{2})
	require.NoError(t, err)
	mirrors := cd.Mirrors()
	require.Len(t, mirrors, 2)
	assert.InDelta(t, 0.0, mirrors[0].Normal().Dot(mirrors[1].Normal()), 1e-6)
}

// TestReflection verifies each generator is an involution with
// determinant −1.
func TestReflection(t *testing.T) {
	cd, err := diagram.New([]int{4, 3})
	require.NoError(t, err)
	for i, r := range cd.Generators() {
		assert.True(t, r.Mul(r).ApproxEq(vecmath.EmptyIdent()),
			"generator %d squared", i)
		assert.InDelta(t, -1.0, r.Determinant(), 1e-6, "generator %d determinant", i)
	}
}

// TestPoleBasis verifies the change-of-basis matrix inverts the
// reversed-mirror column matrix.
func TestPoleBasis(t *testing.T) {
	cd, err := diagram.New([]int{4, 3})
	require.NoError(t, err)

	basis, err := cd.PoleBasis()
	require.NoError(t, err)
	assert.Equal(t, cd.Ndim(), basis.Ndim())

	mirrors := cd.Mirrors()
	cols := make([]vecmath.Vector, len(mirrors))
	for i, m := range mirrors {
		cols[len(mirrors)-1-i] = m.Normal().Pad(cd.Ndim())
	}
	a := vecmath.FromCols(cols)
	assert.True(t, basis.Transpose().Mul(a).ApproxEq(vecmath.EmptyIdent()))
}
