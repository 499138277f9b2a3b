package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/units"
)

// Point is a position in space. It wraps a Vector but is a distinct type:
// positions translate under rigid transforms, free directions do not.
type Point struct {
	position algebra.Vector
}

// NewPoint creates a point from coordinates and a unit.
func NewPoint(coordinates []float64, unit units.Unit) (Point, error) {
	v, err := algebra.NewVector(coordinates, unit)
	if err != nil {
		return Point{}, err
	}
	return Point{position: v}, nil
}

// PointFromVector wraps an existing position vector.
func PointFromVector(v algebra.Vector) Point {
	return Point{position: v}
}

// MustPoint is NewPoint that panics on error, for literals.
func MustPoint(coordinates []float64, unit units.Unit) Point {
	p, err := NewPoint(coordinates, unit)
	if err != nil {
		panic(fmt.Sprintf("geometry: %v", err))
	}
	return p
}

// Origin creates the origin of the given dimension.
func Origin(dimension int, unit units.Unit) Point {
	return Point{position: algebra.Zero(dimension, unit)}
}

// Kind implements Primitive.
func (p Point) Kind() Kind { return KindPoint }

// Position returns the underlying position vector.
func (p Point) Position() algebra.Vector { return p.position }

// Dimension returns the coordinate count.
func (p Point) Dimension() int { return p.position.Dimension() }

// X returns the first coordinate.
func (p Point) X() float64 { return p.position.At(0) }

// Y returns the second coordinate; the point must be at least 2D.
func (p Point) Y() float64 { return p.position.At(1) }

// Z returns the third coordinate; the point must be at least 3D.
func (p Point) Z() float64 { return p.position.At(2) }

func (p Point) String() string {
	parts := make([]string, p.Dimension())
	for i := 0; i < p.Dimension(); i++ {
		parts[i] = strconv.FormatFloat(p.position.At(i), 'g', 6, 64)
	}
	return "Point(" + strings.Join(parts, ", ") + ")"
}

// Equal compares positions with the vector tolerance.
func (p Point) Equal(other Point) bool {
	return p.position.Equal(other.position)
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) (units.Scalar, error) {
	diff, err := other.position.Sub(p.position)
	if err != nil {
		return units.Scalar{}, err
	}
	return diff.Norm(), nil
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) (Point, error) {
	sum, err := p.position.Add(other.position)
	if err != nil {
		return Point{}, err
	}
	return Point{position: sum.Scale(0.5)}, nil
}

// Translate returns the point displaced by a vector.
func (p Point) Translate(offset algebra.Vector) (Point, error) {
	moved, err := p.position.Add(offset)
	if err != nil {
		return Point{}, err
	}
	return Point{position: moved}, nil
}
