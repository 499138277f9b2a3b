package algebra

import "fmt"

// Tensor is an immutable n-dimensional generalization of Matrix with an
// explicit shape tuple and row-major flattened storage.
type Tensor struct {
	elements []float64
	shape    []int
}

// NewTensor creates a tensor from flattened row-major elements and an
// explicit shape. The flat length must equal the product of the shape.
func NewTensor(elements []float64, shape []int) (Tensor, error) {
	size := 1
	for _, d := range shape {
		size *= d
	}
	if len(elements) != size {
		return Tensor{}, &ShapeError{Shape: append([]int(nil), shape...), Want: size, Got: len(elements)}
	}
	cp := make([]float64, len(elements))
	copy(cp, elements)
	return Tensor{elements: cp, shape: append([]int(nil), shape...)}, nil
}

// NestedValue is one level of a nested tensor literal: either a float64
// leaf or a []NestedValue branch.
type NestedValue interface{}

// FromNested builds a tensor from a nested-list structure, detecting the
// shape and rejecting ragged nesting.
func FromNested(nested []NestedValue) (Tensor, error) {
	flat, shape, err := flattenNested(nested)
	if err != nil {
		return Tensor{}, err
	}
	return NewTensor(flat, shape)
}

func flattenNested(nested []NestedValue) ([]float64, []int, error) {
	if len(nested) == 0 {
		return nil, []int{0}, nil
	}
	// Leaf level: all entries numeric.
	if _, ok := nested[0].(float64); ok {
		flat := make([]float64, len(nested))
		for i, e := range nested {
			f, ok := e.(float64)
			if !ok {
				return nil, nil, &ShapeError{Reason: fmt.Sprintf("mixed leaf/list nesting at index %d", i)}
			}
			flat[i] = f
		}
		return flat, []int{len(nested)}, nil
	}

	var flat []float64
	var subShape []int
	for i, e := range nested {
		sub, ok := e.([]NestedValue)
		if !ok {
			return nil, nil, &ShapeError{Reason: fmt.Sprintf("mixed leaf/list nesting at index %d", i)}
		}
		f, s, err := flattenNested(sub)
		if err != nil {
			return nil, nil, err
		}
		if subShape == nil {
			subShape = s
		} else if !equalShape(subShape, s) {
			return nil, nil, &ShapeError{Reason: "inconsistent tensor dimensions"}
		}
		flat = append(flat, f...)
	}
	return flat, append([]int{len(nested)}, subShape...), nil
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Zeros creates a tensor of zeros with the given shape.
func Zeros(shape []int) Tensor {
	size := 1
	for _, d := range shape {
		size *= d
	}
	return Tensor{elements: make([]float64, size), shape: append([]int(nil), shape...)}
}

// Ones creates a tensor of ones with the given shape.
func Ones(shape []int) Tensor {
	t := Zeros(shape)
	for i := range t.elements {
		t.elements[i] = 1.0
	}
	return t
}

// Shape returns a copy of the shape tuple.
func (t Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of dimensions.
func (t Tensor) Rank() int { return len(t.shape) }

// Size returns the flattened element count.
func (t Tensor) Size() int { return len(t.elements) }

// At returns the element at a multi-dimensional index.
func (t Tensor) At(indices ...int) (float64, error) {
	if len(indices) != len(t.shape) {
		return 0, &ShapeError{
			Shape:  t.Shape(),
			Reason: fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)),
		}
	}
	flat := 0
	stride := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		if indices[i] < 0 || indices[i] >= t.shape[i] {
			return 0, &ShapeError{
				Shape:  t.Shape(),
				Reason: fmt.Sprintf("index %d out of range for dimension %d", indices[i], i),
			}
		}
		flat += indices[i] * stride
		stride *= t.shape[i]
	}
	return t.elements[flat], nil
}

func (t Tensor) String() string {
	return fmt.Sprintf("Tensor%v", t.shape)
}
