package group

import "github.com/HactarCE/coxeter/vecmath"

// Orbit returns every distinct image of seed under the group's action:
// a worklist closure applying each generator matrix to every discovered
// vector, deduplicating by approximate equality. The seed itself is always
// the first entry. Complexity: O(orbit² · g) vector comparisons.
func (g *Group) Orbit(seed vecmath.Vector) []vecmath.Vector {
	orbit := []vecmath.Vector{seed.Clone()}
	for next := 0; next < len(orbit); next++ {
		for _, gen := range g.Generators() {
			img := g.matrices[gen].Transform(orbit[next])
			if !containsApprox(orbit, img) {
				orbit = append(orbit, img)
			}
		}
	}
	return orbit
}

// OrbitAll unions the orbits of several seeds, deduplicating across seeds
// so that overlapping orbits contribute each vector once.
func (g *Group) OrbitAll(seeds []vecmath.Vector) []vecmath.Vector {
	var all []vecmath.Vector
	for _, seed := range seeds {
		for _, v := range g.Orbit(seed) {
			if !containsApprox(all, v) {
				all = append(all, v)
			}
		}
	}
	return all
}

func containsApprox(vs []vecmath.Vector, v vecmath.Vector) bool {
	for _, w := range vs {
		if w.ApproxEq(v) {
			return true
		}
	}
	return false
}
