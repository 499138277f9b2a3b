package algebra

import "fmt"

// DimensionError reports a shape mismatch between operands of a vector,
// matrix, or tensor operation. Want and Got are human-readable shape
// descriptions ("3", "2x3", "(2, 2, 2)").
type DimensionError struct {
	Op   string
	Want string
	Got  string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch in %s: expected %s, got %s", e.Op, e.Want, e.Got)
}

// ZeroVectorError reports use of a zero vector where a direction is required.
type ZeroVectorError struct {
	Op string
}

func (e *ZeroVectorError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("zero vector is invalid in %s", e.Op)
	}
	return "zero vector is invalid in this context"
}

// SingularMatrixError reports an attempt to invert a singular matrix.
// Determinant carries the computed determinant when it was evaluated
// before the failure; it is zero when a pivot underflowed instead.
type SingularMatrixError struct {
	Determinant float64
}

func (e *SingularMatrixError) Error() string {
	if e.Determinant != 0 {
		return fmt.Sprintf("cannot invert singular matrix (determinant = %g)", e.Determinant)
	}
	return "cannot invert singular matrix (determinant = 0)"
}

// ShapeError reports an inconsistent tensor construction: the flattened
// element count does not match the declared shape, or nested sub-shapes
// are not uniform.
type ShapeError struct {
	Shape  []int
	Want   int
	Got    int
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid tensor shape %v: %s", e.Shape, e.Reason)
	}
	return fmt.Sprintf("shape %v requires %d elements, got %d", e.Shape, e.Want, e.Got)
}
