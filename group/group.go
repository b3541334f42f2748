package group

import (
	"fmt"

	"github.com/HactarCE/coxeter/vecmath"
)

// Group is the closure of a set of generator matrices, stored as flat
// tables indexed by Element handle. Built once by FromGenerators and
// immutable thereafter.
type Group struct {
	// ndim is the common dimension: the max over all generators.
	ndim int
	// generatorCount excludes the identity element.
	generatorCount int

	// matrices holds each element's matrix; matrices[0] is the identity.
	matrices []vecmath.Matrix
	// decompositions holds, per element, the ordered generator handles
	// whose composition discovered it (not necessarily shortest).
	decompositions [][]Element
	// successors[i][e] is the element e ∘ generator(i+1).
	successors [][]Element
	// inverses holds each element's inverse handle.
	inverses []Element
}

// Trivial returns the group containing only the identity in ndim
// dimensions.
func Trivial(ndim int) *Group {
	return &Group{
		ndim:           ndim,
		matrices:       []vecmath.Matrix{vecmath.Ident(ndim)},
		decompositions: [][]Element{{}},
		inverses:       []Element{Identity},
	}
}

// FromGenerators computes the closure of the given generator matrices as a
// labeled Cayley graph. Generators may declare differing dimensions; the
// common dimension is the maximum. Termination requires the generated
// group to be finite — a non-finite set is reported as ErrTooManyElements
// once the configured limit is hit.
func FromGenerators(generators []vecmath.Matrix, opts ...Option) (*Group, error) {
	if len(generators) == 0 {
		return nil, ErrNoGenerators
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ndim := 0
	for _, m := range generators {
		if m.Ndim() > ndim {
			ndim = m.Ndim()
		}
	}

	g := Trivial(ndim)
	g.generatorCount = len(generators)
	g.successors = make([][]Element, len(generators))
	g.inverses = make([]Element, len(generators)+1)

	// Find all group elements: breadth-first over a worklist of
	// discovered-but-unprocessed handles.
	for next := 0; next < g.Order(); next++ {
		e := Element(next)

		for i, generatorMatrix := range generators {
			gen := Element(i + 1)

			m := g.matrices[e].Mul(generatorMatrix)

			var successor Element
			switch {
			case m.ApproxEq(vecmath.EmptyIdent()):
				// e ∘ gen = I, so e is this generator's inverse.
				g.inverses[gen] = e
				successor = Identity
			default:
				if known := g.findElement(m); known != Identity {
					// e ∘ gen = existing element.
					successor = known
				} else {
					// e ∘ gen = new element.
					if len(g.matrices) >= o.MaxElements {
						return nil, fmt.Errorf("closure reached %d elements: %w",
							o.MaxElements, ErrTooManyElements)
					}
					g.matrices = append(g.matrices, m)
					dec := make([]Element, 0, len(g.decompositions[e])+1)
					dec = append(dec, g.decompositions[e]...)
					dec = append(dec, gen)
					g.decompositions = append(g.decompositions, dec)
					successor = Element(len(g.matrices) - 1)
				}
			}

			g.successors[i] = append(g.successors[i], successor)
		}
	}

	// Derive inverses for everything beyond the generators by composing
	// the inverses of each element's decomposition in reverse order.
	for len(g.inverses) < g.Order() {
		g.inverses = append(g.inverses, Identity)
	}
	for idx := g.generatorCount + 1; idx < g.Order(); idx++ {
		e := Element(idx)
		if g.inverses[e] != Identity {
			continue
		}
		inv := Identity
		dec := g.decompositions[e]
		for k := len(dec) - 1; k >= 0; k-- {
			inv = g.Compose(inv, g.inverses[dec[k]])
		}
		if inv == Identity {
			return nil, fmt.Errorf("element %d: %w", e, ErrInverseResolution)
		}
		g.inverses[e] = inv
		g.inverses[inv] = e
	}

	return g, nil
}

// findElement returns the handle of an existing non-identity element whose
// matrix approximately equals m, or Identity if none matches. The identity
// itself is matched earlier by the caller's EmptyIdent check.
func (g *Group) findElement(m vecmath.Matrix) Element {
	for j := 1; j < len(g.matrices); j++ {
		if g.matrices[j].ApproxEq(m) {
			return Element(j)
		}
	}
	return Identity
}

// Ndim returns the common dimension of the group's matrices.
func (g *Group) Ndim() int { return g.ndim }

// Order returns the number of elements discovered.
func (g *Group) Order() int { return len(g.matrices) }

// Matrix returns the matrix of element e.
func (g *Group) Matrix(e Element) vecmath.Matrix { return g.matrices[e] }

// Decompose returns the ordered generator handles whose composition yields
// e — the sequence that discovered it, not necessarily the shortest.
func (g *Group) Decompose(e Element) []Element { return g.decompositions[e] }

// Compose multiplies two element handles by applying, in order, each
// generator of e2's decomposition to e1 via the successor table. This is
// the only way element handles are multiplied; matrices are never
// re-derived. Complexity: O(len(Decompose(e2))).
func (g *Group) Compose(e1, e2 Element) Element {
	e := e1
	for _, gen := range g.decompositions[e2] {
		e = g.successors[gen-1][e]
	}
	return e
}

// Inverse returns the inverse handle of e.
func (g *Group) Inverse(e Element) Element { return g.inverses[e] }

// Elements returns every element handle in discovery order.
func (g *Group) Elements() []Element {
	out := make([]Element, g.Order())
	for i := range out {
		out[i] = Element(i)
	}
	return out
}

// Generators returns the handles of the generators, in input order.
func (g *Group) Generators() []Element {
	out := make([]Element, g.generatorCount)
	for i := range out {
		out[i] = Element(i + 1)
	}
	return out
}
