// Package algebra provides the fixed-shape immutable numeric containers
// of the Armature kernel: unit-tagged vectors, matrices, and tensors.
// Every operation checks shape and unit compatibility before computing;
// nothing is broadcast, coerced, or clamped.
package algebra

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/armature/pkg/units"
)

// defaultTol is the tolerance used by IsZero when none is given.
const defaultTol = 1e-10

// relTol is the relative tolerance used by Equal.
const relTol = 1e-9

// Vector is an immutable ordered tuple of floats with a space label
// ("R2", "R3", ...) and a single Unit applied uniformly to all components.
type Vector struct {
	components []float64
	space      string
	unit       units.Unit
}

// NewVector creates a vector in the space R{len(components)}.
func NewVector(components []float64, unit units.Unit) (Vector, error) {
	if len(components) == 0 {
		return Vector{}, &DimensionError{Op: "vector construction", Want: ">=1", Got: "0"}
	}
	cp := make([]float64, len(components))
	copy(cp, components)
	return Vector{
		components: cp,
		space:      fmt.Sprintf("R%d", len(cp)),
		unit:       unit,
	}, nil
}

// NewVectorInSpace creates a vector with an explicit space label.
// The label "R{n}" must match the component count.
func NewVectorInSpace(components []float64, space string, unit units.Unit) (Vector, error) {
	v, err := NewVector(components, unit)
	if err != nil {
		return Vector{}, err
	}
	if strings.HasPrefix(space, "R") {
		if n, convErr := strconv.Atoi(space[1:]); convErr == nil && n != len(components) {
			return Vector{}, &DimensionError{
				Op:   "vector construction",
				Want: strconv.Itoa(n),
				Got:  strconv.Itoa(len(components)),
			}
		}
	}
	v.space = space
	return v, nil
}

// MustVector is NewVector that panics on error, for literals in tests
// and fixed internal construction.
func MustVector(components []float64, unit units.Unit) Vector {
	v, err := NewVector(components, unit)
	if err != nil {
		panic(fmt.Sprintf("algebra: %v", err))
	}
	return v
}

// Zero creates the zero vector of the given dimension.
func Zero(dimension int, unit units.Unit) Vector {
	return MustVector(make([]float64, dimension), unit)
}

// Basis creates the standard basis vector with 1 at index.
func Basis(dimension, index int, unit units.Unit) (Vector, error) {
	if index < 0 || index >= dimension {
		return Vector{}, &DimensionError{
			Op:   "basis vector",
			Want: fmt.Sprintf("index in [0, %d)", dimension),
			Got:  strconv.Itoa(index),
		}
	}
	c := make([]float64, dimension)
	c[index] = 1.0
	return NewVector(c, unit)
}

// Dimension returns the component count.
func (v Vector) Dimension() int { return len(v.components) }

// Space returns the space label, e.g. "R3".
func (v Vector) Space() string { return v.space }

// Unit returns the unit shared by all components.
func (v Vector) Unit() units.Unit { return v.unit }

// At returns the component at index i.
func (v Vector) At(i int) float64 { return v.components[i] }

// Components returns a copy of the component slice.
func (v Vector) Components() []float64 {
	cp := make([]float64, len(v.components))
	copy(cp, v.components)
	return cp
}

func (v Vector) String() string {
	parts := make([]string, len(v.components))
	for i, c := range v.components {
		parts[i] = fmt.Sprintf("%.6g", c)
	}
	s := "[" + strings.Join(parts, ", ") + "]"
	if v.unit.IsDimensionless() {
		return s
	}
	return s + " " + v.unit.String()
}

// checkPair validates dimension and unit compatibility for a pairwise op.
func (v Vector) checkPair(other Vector, op string) error {
	if v.Dimension() != other.Dimension() {
		return &DimensionError{
			Op:   op,
			Want: strconv.Itoa(v.Dimension()),
			Got:  strconv.Itoa(other.Dimension()),
		}
	}
	return v.unit.CheckCompatible(other.unit, op)
}

// Add returns v + other componentwise.
func (v Vector) Add(other Vector) (Vector, error) {
	if err := v.checkPair(other, "vector addition"); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.components))
	for i := range v.components {
		out[i] = v.components[i] + other.components[i]
	}
	return Vector{components: out, space: v.space, unit: v.unit}, nil
}

// Sub returns v - other componentwise.
func (v Vector) Sub(other Vector) (Vector, error) {
	if err := v.checkPair(other, "vector subtraction"); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.components))
	for i := range v.components {
		out[i] = v.components[i] - other.components[i]
	}
	return Vector{components: out, space: v.space, unit: v.unit}, nil
}

// Scale multiplies every component by a bare float.
func (v Vector) Scale(f float64) Vector {
	out := make([]float64, len(v.components))
	for i, c := range v.components {
		out[i] = c * f
	}
	return Vector{components: out, space: v.space, unit: v.unit}
}

// ScaleScalar multiplies by a Scalar, which must be dimensionless.
func (v Vector) ScaleScalar(s units.Scalar) (Vector, error) {
	if !s.Unit.IsDimensionless() {
		return Vector{}, &units.UnitError{
			Left:  v.unit,
			Right: s.Unit,
			Op:    "scalar multiplication (multiplier must be dimensionless)",
		}
	}
	return v.Scale(s.Value), nil
}

// Div divides every component by a bare float; zero divisors are rejected.
func (v Vector) Div(f float64) (Vector, error) {
	if f == 0 {
		return Vector{}, &units.DivideByZeroError{Op: "vector division"}
	}
	return v.Scale(1 / f), nil
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Dot returns the dot product as a Scalar. The result keeps the operands'
// unit rather than its square; Armature has no compound-unit algebra and
// this simplification is deliberate.
func (v Vector) Dot(other Vector) (units.Scalar, error) {
	if err := v.checkPair(other, "dot product"); err != nil {
		return units.Scalar{}, err
	}
	sum := 0.0
	for i := range v.components {
		sum += v.components[i] * other.components[i]
	}
	return units.NewScalar(sum, v.unit), nil
}

// Cross returns the cross product. Defined for 3D vectors only.
func (v Vector) Cross(other Vector) (Vector, error) {
	if v.Dimension() != 3 || other.Dimension() != 3 {
		return Vector{}, &DimensionError{
			Op:   "cross product",
			Want: "3",
			Got:  fmt.Sprintf("%d and %d", v.Dimension(), other.Dimension()),
		}
	}
	if err := v.unit.CheckCompatible(other.unit, "cross product"); err != nil {
		return Vector{}, err
	}
	a, b, c := v.components[0], v.components[1], v.components[2]
	d, e, f := other.components[0], other.components[1], other.components[2]
	return Vector{
		components: []float64{b*f - c*e, c*d - a*f, a*e - b*d},
		space:      "R3",
		unit:       v.unit,
	}, nil
}

// Norm returns the Euclidean norm as a Scalar in the vector's unit.
func (v Vector) Norm() units.Scalar {
	sum := 0.0
	for _, c := range v.components {
		sum += c * c
	}
	return units.NewScalar(math.Sqrt(sum), v.unit)
}

// Normalize returns the unit-length vector in the same direction.
// The result is always dimensionless. Zero vectors cannot be normalized.
func (v Vector) Normalize() (Vector, error) {
	n := v.Norm()
	if n.IsZero(0) {
		return Vector{}, &ZeroVectorError{Op: "normalization"}
	}
	out := make([]float64, len(v.components))
	for i, c := range v.components {
		out[i] = c / n.Value
	}
	return Vector{components: out, space: v.space, unit: units.Unitless}, nil
}

// IsZero reports whether every component is within tol of zero.
// A non-positive tol falls back to 1e-10.
func (v Vector) IsZero(tol float64) bool {
	if tol <= 0 {
		tol = defaultTol
	}
	for _, c := range v.components {
		if math.Abs(c) >= tol {
			return false
		}
	}
	return true
}

// Equal compares dimension, unit, and components with relative
// tolerance 1e-9.
func (v Vector) Equal(other Vector) bool {
	if v.Dimension() != other.Dimension() || v.unit != other.unit {
		return false
	}
	for i := range v.components {
		if !units.Close(v.components[i], other.components[i], relTol) {
			return false
		}
	}
	return true
}
