package vecmath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrSingularMatrix indicates Inverse was called on a matrix whose
// elimination produced a zero pivot.
var ErrSingularMatrix = errors.New("vecmath: matrix is singular")

// Matrix is a square ndim×ndim matrix stored column-major in a flat slice.
// Reads at or beyond ndim return implicit identity entries, so matrices of
// different sizes compose and compare as if embedded in a common larger
// space. The zero value is the 0×0 matrix, which acts as the identity of
// every dimension.
type Matrix struct {
	ndim  int
	elems []float64 // column-major, length ndim*ndim
}

// Zero returns the ndim×ndim all-zero matrix.
func Zero(ndim int) Matrix {
	return Matrix{ndim: ndim, elems: make([]float64, ndim*ndim)}
}

// Ident returns the ndim×ndim identity matrix.
func Ident(ndim int) Matrix {
	m := Zero(ndim)
	for i := 0; i < ndim; i++ {
		m.elems[i*ndim+i] = 1
	}
	return m
}

// EmptyIdent returns the 0×0 matrix, the identity of every dimension under
// the implicit-identity read rule.
func EmptyIdent() Matrix { return Matrix{} }

// FromCols builds a len(cols)×len(cols) matrix whose i-th column is
// cols[i], zero-extended or ignored beyond the declared dimension.
func FromCols(cols []Vector) Matrix {
	ndim := len(cols)
	m := Zero(ndim)
	for c, col := range cols {
		for r := 0; r < ndim; r++ {
			m.elems[c*ndim+r] = col.Get(r)
		}
	}
	return m
}

// Ndim returns the declared number of dimensions.
// Complexity: O(1).
func (m Matrix) Ndim() int { return m.ndim }

// Get returns the element at (col, row). Indices at or beyond ndim read as
// implicit identity entries. Complexity: O(1).
func (m Matrix) Get(col, row int) float64 {
	if col < m.ndim && row < m.ndim {
		return m.elems[col*m.ndim+row]
	}
	if col == row {
		return 1
	}
	return 0
}

// Set stores x at (col, row). Both indices must be within the declared
// dimension; writing into the implicit-identity region is a programming
// error and panics.
func (m Matrix) Set(col, row int, x float64) {
	if col < 0 || col >= m.ndim || row < 0 || row >= m.ndim {
		panic(fmt.Sprintf("vecmath: Set(%d,%d) outside %d×%d matrix", col, row, m.ndim, m.ndim))
	}
	m.elems[col*m.ndim+row] = x
}

// Col returns column i as a Vector of length ndim.
func (m Matrix) Col(i int) Vector {
	out := make(Vector, m.ndim)
	for r := 0; r < m.ndim; r++ {
		out[r] = m.Get(i, r)
	}
	return out
}

// Row returns row i as a Vector of length ndim.
func (m Matrix) Row(i int) Vector {
	out := make(Vector, m.ndim)
	for c := 0; c < m.ndim; c++ {
		out[c] = m.Get(c, i)
	}
	return out
}

// Mul returns m·n, zero-padded to the larger declared dimension.
// Complexity: O(d³).
func (m Matrix) Mul(n Matrix) Matrix {
	d := maxInt(m.ndim, n.ndim)
	out := Zero(d)
	for c := 0; c < d; c++ {
		for r := 0; r < d; r++ {
			var sum float64
			for k := 0; k < d; k++ {
				sum += m.Get(k, r) * n.Get(c, k)
			}
			out.elems[c*d+r] = sum
		}
	}
	return out
}

// Transform applies m to v, padding both to the larger dimension.
// Complexity: O(d²).
func (m Matrix) Transform(v Vector) Vector {
	d := maxInt(m.ndim, v.Ndim())
	out := make(Vector, d)
	for r := 0; r < d; r++ {
		var sum float64
		for c := 0; c < d; c++ {
			sum += m.Get(c, r) * v.Get(c)
		}
		out[r] = sum
	}
	return out
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	out := Zero(m.ndim)
	for c := 0; c < m.ndim; c++ {
		for r := 0; r < m.ndim; r++ {
			out.elems[c*m.ndim+r] = m.Get(r, c)
		}
	}
	return out
}

// Scale returns m with every stored element multiplied by s.
func (m Matrix) Scale(s float64) Matrix {
	out := Zero(m.ndim)
	for i, x := range m.elems {
		out.elems[i] = x * s
	}
	return out
}

// Determinant computes det(m) by Gaussian elimination with partial
// pivoting. Complexity: O(d³).
func (m Matrix) Determinant() float64 {
	d := m.ndim
	if d == 0 {
		return 1
	}
	a := m.toRows()
	det := 1.0
	for col := 0; col < d; col++ {
		pivot := pivotRow(a, col)
		if a[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det = -det
		}
		det *= a[col][col]
		for r := col + 1; r < d; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < d; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}
	return det
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination with partial pivoting.
// Returns ErrSingularMatrix when a pivot vanishes. Complexity: O(d³).
func (m Matrix) Inverse() (Matrix, error) {
	d := m.ndim
	a := m.toRows()
	inv := make([][]float64, d)
	for r := 0; r < d; r++ {
		inv[r] = make([]float64, d)
		inv[r][r] = 1
	}
	for col := 0; col < d; col++ {
		pivot := pivotRow(a, col)
		if a[pivot][col] == 0 {
			return Matrix{}, fmt.Errorf("Inverse: %w", ErrSingularMatrix)
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			inv[pivot], inv[col] = inv[col], inv[pivot]
		}
		f := a[col][col]
		for c := 0; c < d; c++ {
			a[col][c] /= f
			inv[col][c] /= f
		}
		for r := 0; r < d; r++ {
			if r == col || a[r][col] == 0 {
				continue
			}
			g := a[r][col]
			for c := 0; c < d; c++ {
				a[r][c] -= g * a[col][c]
				inv[r][c] -= g * inv[col][c]
			}
		}
	}
	out := Zero(d)
	for c := 0; c < d; c++ {
		for r := 0; r < d; r++ {
			out.elems[c*d+r] = inv[r][c]
		}
	}
	return out, nil
}

// ApproxEq reports componentwise equality within Epsilon over the larger
// declared dimension, honoring implicit identity entries.
func (m Matrix) ApproxEq(n Matrix) bool {
	d := maxInt(m.ndim, n.ndim)
	for c := 0; c < d; c++ {
		for r := 0; r < d; r++ {
			if !ApproxEq(m.Get(c, r), n.Get(c, r)) {
				return false
			}
		}
	}
	return true
}

// String renders m row by row.
func (m Matrix) String() string {
	rows := make([]string, m.ndim)
	for r := 0; r < m.ndim; r++ {
		rows[r] = m.Row(r).String()
	}
	return "[" + strings.Join(rows, " ") + "]"
}

// toRows copies m into a row-major working array for elimination.
func (m Matrix) toRows() [][]float64 {
	a := make([][]float64, m.ndim)
	for r := 0; r < m.ndim; r++ {
		a[r] = make([]float64, m.ndim)
		for c := 0; c < m.ndim; c++ {
			a[r][c] = m.Get(c, r)
		}
	}
	return a
}

// pivotRow returns the index of the row at or below col with the largest
// absolute entry in that column.
func pivotRow(a [][]float64, col int) int {
	best := col
	for r := col + 1; r < len(a); r++ {
		if math.Abs(a[r][col]) > math.Abs(a[best][col]) {
			best = r
		}
	}
	return best
}
