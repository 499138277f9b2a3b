package algebra

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/armature/pkg/units"
)

// pivotTol is the magnitude below which a pivot (or determinant) is
// treated as zero during inversion.
const pivotTol = 1e-10

// Matrix is an immutable rectangular row-major grid of floats.
// Shape is fixed at construction; every row has equal length.
type Matrix struct {
	elements []float64 // row-major
	rows     int
	cols     int
}

// NewMatrix creates a matrix from rows. Ragged input is rejected.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, &DimensionError{Op: "matrix construction", Want: ">=1x1", Got: "empty"}
	}
	cols := len(rows[0])
	elements := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, &DimensionError{
				Op:   "matrix construction",
				Want: fmt.Sprintf("%d columns in row %d", cols, i),
				Got:  strconv.Itoa(len(row)),
			}
		}
		elements = append(elements, row...)
	}
	return Matrix{elements: elements, rows: len(rows), cols: cols}, nil
}

// MustMatrix is NewMatrix that panics on error, for literals.
func MustMatrix(rows [][]float64) Matrix {
	m, err := NewMatrix(rows)
	if err != nil {
		panic(fmt.Sprintf("algebra: %v", err))
	}
	return m
}

// Identity creates the n-by-n identity matrix.
func Identity(n int) Matrix {
	elements := make([]float64, n*n)
	for i := 0; i < n; i++ {
		elements[i*n+i] = 1.0
	}
	return Matrix{elements: elements, rows: n, cols: n}
}

// ZeroMatrix creates a rows-by-cols matrix of zeros.
func ZeroMatrix(rows, cols int) Matrix {
	return Matrix{elements: make([]float64, rows*cols), rows: rows, cols: cols}
}

// Rows returns the row count.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m Matrix) Cols() int { return m.cols }

// Shape returns "RxC" for error messages and display.
func (m Matrix) Shape() string { return fmt.Sprintf("%dx%d", m.rows, m.cols) }

// At returns the element at (row, col).
func (m Matrix) At(row, col int) float64 {
	return m.elements[row*m.cols+col]
}

// IsSquare reports whether rows == cols.
func (m Matrix) IsSquare() bool { return m.rows == m.cols }

func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%8.4f", m.At(i, j))
		}
		b.WriteString("]")
		if i < m.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Add returns m + other. Shapes must match.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return Matrix{}, &DimensionError{Op: "matrix addition", Want: m.Shape(), Got: other.Shape()}
	}
	out := make([]float64, len(m.elements))
	for i := range m.elements {
		out[i] = m.elements[i] + other.elements[i]
	}
	return Matrix{elements: out, rows: m.rows, cols: m.cols}, nil
}

// Sub returns m - other. Shapes must match.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return Matrix{}, &DimensionError{Op: "matrix subtraction", Want: m.Shape(), Got: other.Shape()}
	}
	out := make([]float64, len(m.elements))
	for i := range m.elements {
		out[i] = m.elements[i] - other.elements[i]
	}
	return Matrix{elements: out, rows: m.rows, cols: m.cols}, nil
}

// Mul returns the matrix product m * other. Inner dimensions must match.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.cols != other.rows {
		return Matrix{}, &DimensionError{
			Op:   "matrix multiplication (inner dimensions must match)",
			Want: m.Shape(),
			Got:  other.Shape(),
		}
	}
	out := make([]float64, m.rows*other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			sum := 0.0
			for k := 0; k < m.cols; k++ {
				sum += m.At(i, k) * other.At(k, j)
			}
			out[i*other.cols+j] = sum
		}
	}
	return Matrix{elements: out, rows: m.rows, cols: other.cols}, nil
}

// Scale multiplies every element by a bare float.
func (m Matrix) Scale(f float64) Matrix {
	out := make([]float64, len(m.elements))
	for i, e := range m.elements {
		out[i] = e * f
	}
	return Matrix{elements: out, rows: m.rows, cols: m.cols}
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	out := make([]float64, len(m.elements))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.At(i, j)
		}
	}
	return Matrix{elements: out, rows: m.cols, cols: m.rows}
}

// Determinant computes the determinant by recursive cofactor expansion.
// Correct for any n, exponential in n; acceptable for the small matrices
// this kernel works with.
func (m Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, &DimensionError{Op: "determinant", Want: "square matrix", Got: m.Shape()}
	}
	return detRecursive(m.elements, m.rows), nil
}

func detRecursive(elements []float64, n int) float64 {
	if n == 1 {
		return elements[0]
	}
	if n == 2 {
		return elements[0]*elements[3] - elements[1]*elements[2]
	}
	det := 0.0
	minor := make([]float64, (n-1)*(n-1))
	for j := 0; j < n; j++ {
		idx := 0
		for i := 1; i < n; i++ {
			for k := 0; k < n; k++ {
				if k == j {
					continue
				}
				minor[idx] = elements[i*n+k]
				idx++
			}
		}
		cofactor := elements[j] * detRecursive(minor, n-1)
		if j%2 == 1 {
			cofactor = -cofactor
		}
		det += cofactor
	}
	return det
}

// Inverse computes the inverse by Gauss-Jordan elimination with partial
// pivoting. Singular matrices (pivot magnitude or determinant below
// 1e-10) are rejected.
func (m Matrix) Inverse() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, &DimensionError{Op: "matrix inversion", Want: "square matrix", Got: m.Shape()}
	}

	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, err
	}
	if math.Abs(det) < pivotTol {
		return Matrix{}, &SingularMatrixError{Determinant: det}
	}

	n := m.rows
	// Augmented matrix [A | I].
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = m.At(i, j)
		}
		aug[i][n+i] = 1.0
	}

	for i := 0; i < n; i++ {
		// Partial pivot: swap in the row with the largest column magnitude.
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(aug[k][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		if math.Abs(aug[i][i]) < pivotTol {
			return Matrix{}, &SingularMatrixError{}
		}

		pivot := aug[i][i]
		for j := 0; j < 2*n; j++ {
			aug[i][j] /= pivot
		}
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := aug[k][i]
			for j := 0; j < 2*n; j++ {
				aug[k][j] -= factor * aug[i][j]
			}
		}
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		copy(out[i*n:(i+1)*n], aug[i][n:])
	}
	return Matrix{elements: out, rows: n, cols: n}, nil
}

// Apply multiplies the matrix by a vector. The column count must equal
// the vector dimension; the result lives in R{rows} and keeps the
// input vector's unit.
func (m Matrix) Apply(v Vector) (Vector, error) {
	if m.cols != v.Dimension() {
		return Vector{}, &DimensionError{
			Op:   "matrix-vector multiplication",
			Want: strconv.Itoa(m.cols),
			Got:  strconv.Itoa(v.Dimension()),
		}
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for j := 0; j < m.cols; j++ {
			sum += m.At(i, j) * v.At(j)
		}
		out[i] = sum
	}
	return MustVector(out, v.Unit()), nil
}

// Equal compares shape and elements with relative tolerance 1e-9.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.elements {
		if !units.Close(m.elements[i], other.elements[i], relTol) {
			return false
		}
	}
	return true
}
