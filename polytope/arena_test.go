package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HactarCE/coxeter/polytope"
)

// TestNewCubeCounts verifies the face-lattice element counts of hypercubes
// across dimensions: 2^n vertices, n·2^(n−1) edges, one rank-n root.
func TestNewCubeCounts(t *testing.T) {
	cases := []struct {
		ndim     int
		vertices int
		edges    int
		total    int
	}{
		{1, 2, 1, 3},
		{2, 4, 4, 9},
		{3, 8, 12, 27},
		{4, 16, 32, 81},
	}
	for _, tc := range cases {
		a, err := polytope.NewCube(tc.ndim, 1.0)
		require.NoError(t, err, "ndim %d", tc.ndim)
		assert.Equal(t, tc.vertices, a.CountRank(0), "ndim %d vertices", tc.ndim)
		assert.Equal(t, tc.edges, a.CountRank(1), "ndim %d edges", tc.ndim)
		assert.Equal(t, 1, a.CountRank(tc.ndim), "ndim %d root cell", tc.ndim)
		assert.Equal(t, tc.total, a.Len(), "ndim %d total 3^n cells", tc.ndim)
		assert.Equal(t, tc.ndim, a.Ndim())
	}
}

// TestNewCubeFaces verifies the 3-cube has the classical 6 rank-2 faces.
func TestNewCubeFaces(t *testing.T) {
	a, err := polytope.NewCube(3, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 6, a.CountRank(2))
}

// TestNewCubeRejectsBadInput verifies the user-error class.
func TestNewCubeRejectsBadInput(t *testing.T) {
	_, err := polytope.NewCube(0, 1.0)
	assert.ErrorIs(t, err, polytope.ErrDimension)
	_, err = polytope.NewCube(polytope.MaxNdim+1, 1.0)
	assert.ErrorIs(t, err, polytope.ErrDimension)
	_, err = polytope.NewCube(3, 0)
	assert.ErrorIs(t, err, polytope.ErrRadius)
}
