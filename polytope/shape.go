package polytope

import (
	"fmt"

	"github.com/HactarCE/coxeter/group"
	"github.com/HactarCE/coxeter/vecmath"
)

// Poles returns the full orbit of the seed facet normals under the group:
// every half-space bounding the shape, deduplicated by approximate
// equality. Exposed separately for diagnostic display. Returns ErrNoPoles
// for an empty seed set and ErrZeroPole for a seed with no direction.
func Poles(g *group.Group, seeds []vecmath.Vector) ([]vecmath.Vector, error) {
	if len(seeds) == 0 {
		return nil, ErrNoPoles
	}
	for i, s := range seeds {
		if s.Mag2() <= vecmath.Epsilon {
			return nil, fmt.Errorf("seed %d: %w", i, ErrZeroPole)
		}
	}
	return g.OrbitAll(seeds), nil
}

// ShapeGeom constructs the polytope bounded by the group orbit of the
// seed facet normals and extracts its rank-2 faces as ordered polygons:
// start from a cube safely larger than every pole, slice once per pole.
// Slicing order does not affect the final shape — each slice is a pure
// half-space intersection — though intermediate states differ.
func ShapeGeom(g *group.Group, seeds []vecmath.Vector) ([]Polygon, error) {
	poles, err := Poles(g, seeds)
	if err != nil {
		return nil, err
	}

	maxMag := 0.0
	for _, p := range poles {
		if m := p.Mag(); m > maxMag {
			maxMag = m
		}
	}

	arena, err := NewCube(g.Ndim(), 2*maxMag)
	if err != nil {
		return nil, err
	}
	for i, pole := range poles {
		if err := arena.SliceByPlane(pole); err != nil {
			return nil, fmt.Errorf("slice %d by %v: %w", i, pole, err)
		}
	}
	return arena.Polygons()
}
