package transform

import (
	"fmt"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
)

// Scale stretches coordinates by per-axis factors about the origin.
type Scale struct {
	factors []float64
}

var _ Transform = Scale{}

// NewScale creates a per-axis scale transform. At least one factor is
// required.
func NewScale(factors []float64) (Scale, error) {
	if len(factors) == 0 {
		return Scale{}, &algebra.DimensionError{Op: "scale construction", Want: ">= 1 factor", Got: "0"}
	}
	s := Scale{factors: make([]float64, len(factors))}
	copy(s.factors, factors)
	return s, nil
}

// UniformScale creates a scale with the same factor on every axis.
func UniformScale(factor float64, dimension int) (Scale, error) {
	factors := make([]float64, dimension)
	for i := range factors {
		factors[i] = factor
	}
	return NewScale(factors)
}

// Factors returns a copy of the per-axis factors.
func (s Scale) Factors() []float64 {
	out := make([]float64, len(s.factors))
	copy(out, s.factors)
	return out
}

// Dimension returns the number of axes the scale acts on.
func (s Scale) Dimension() int { return len(s.factors) }

func (s Scale) String() string {
	return fmt.Sprintf("Scale(%v)", s.factors)
}

// AsMatrix returns the diagonal matrix of the factors.
func (s Scale) AsMatrix() algebra.Matrix {
	n := len(s.factors)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = s.factors[i]
	}
	return algebra.MustMatrix(rows)
}

func (s Scale) apply(v algebra.Vector, op string) (algebra.Vector, error) {
	if v.Dimension() != len(s.factors) {
		return algebra.Vector{}, &algebra.DimensionError{
			Op:   op,
			Want: fmt.Sprintf("%d", len(s.factors)),
			Got:  fmt.Sprintf("%d", v.Dimension()),
		}
	}
	scaled := make([]float64, v.Dimension())
	for i := range scaled {
		scaled[i] = v.At(i) * s.factors[i]
	}
	out, err := algebra.NewVector(scaled, v.Unit())
	if err != nil {
		return algebra.Vector{}, err
	}
	return out, nil
}

// ApplyToVector scales each component by its axis factor.
func (s Scale) ApplyToVector(v algebra.Vector) (algebra.Vector, error) {
	return s.apply(v, "scale application")
}

// ApplyToPoint scales the point's coordinates about the origin.
func (s Scale) ApplyToPoint(p geometry.Point) (geometry.Point, error) {
	scaled, err := s.apply(p.Position(), "scale application")
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.PointFromVector(scaled), nil
}

// Compose returns the scale whose factors are the per-axis products.
func (s Scale) Compose(other Scale) (Scale, error) {
	if len(s.factors) != len(other.factors) {
		return Scale{}, &algebra.DimensionError{
			Op:   "scale composition",
			Want: fmt.Sprintf("%d", len(s.factors)),
			Got:  fmt.Sprintf("%d", len(other.factors)),
		}
	}
	factors := make([]float64, len(s.factors))
	for i := range factors {
		factors[i] = s.factors[i] * other.factors[i]
	}
	return Scale{factors: factors}, nil
}

// Inverse returns the scale by the reciprocal factors. A zero factor
// has no inverse.
func (s Scale) Inverse() (Scale, error) {
	factors := make([]float64, len(s.factors))
	for i, f := range s.factors {
		if f == 0 {
			return Scale{}, &CompositionError{
				Op:     "scale inversion",
				Reason: fmt.Sprintf("factor on axis %d is zero", i),
			}
		}
		factors[i] = 1 / f
	}
	return Scale{factors: factors}, nil
}
