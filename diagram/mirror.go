package diagram

import "github.com/HactarCE/coxeter/vecmath"

// Mirror is a hyperplane reflection represented by its unit normal vector.
type Mirror vecmath.Vector

// Normal returns the mirror's unit normal as a plain vector.
func (m Mirror) Normal() vecmath.Vector { return vecmath.Vector(m) }

// Reflection returns the reflection matrix R(v) = I − 2·v·vᵀ across the
// mirror's hyperplane. Complexity: O(n²).
func (m Mirror) Reflection() vecmath.Matrix {
	v := vecmath.Vector(m)
	ndim := v.Ndim()
	r := vecmath.Ident(ndim)
	for x := 0; x < ndim; x++ {
		for y := 0; y < ndim; y++ {
			r.Set(x, y, r.Get(x, y)-2*v.Get(x)*v.Get(y))
		}
	}
	return r
}
