package geometry

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/units"
)

// Line is an infinite line: a point on the line plus a unit-length
// direction. The direction is normalized at construction; a zero
// direction is rejected.
type Line struct {
	point     Point
	direction algebra.Vector // unit length, dimensionless
}

// NewLine creates a line through point with the given direction.
func NewLine(point Point, direction algebra.Vector) (Line, error) {
	if direction.IsZero(0) {
		return Line{}, &algebra.ZeroVectorError{Op: "line direction"}
	}
	if point.Dimension() != direction.Dimension() {
		return Line{}, &algebra.DimensionError{
			Op:   "line construction",
			Want: strconv.Itoa(point.Dimension()),
			Got:  strconv.Itoa(direction.Dimension()),
		}
	}
	dir, err := direction.Normalize()
	if err != nil {
		return Line{}, err
	}
	return Line{point: point, direction: dir}, nil
}

// LineFromTwoPoints creates the line through two distinct points.
func LineFromTwoPoints(p1, p2 Point) (Line, error) {
	dir, err := p2.Position().Sub(p1.Position())
	if err != nil {
		return Line{}, err
	}
	return NewLine(p1, dir)
}

// Kind implements Primitive.
func (l Line) Kind() Kind { return KindLine }

// Point returns a point on the line.
func (l Line) Point() Point { return l.point }

// Direction returns the unit-length direction.
func (l Line) Direction() algebra.Vector { return l.direction }

// Dimension returns the space dimension.
func (l Line) Dimension() int { return l.point.Dimension() }

func (l Line) String() string {
	return fmt.Sprintf("Line(point=%s, dir=%s)", l.point, l.direction)
}

// PointAt returns the point at parameter t: P(t) = point + t*direction.
func (l Line) PointAt(t float64) Point {
	offset := l.direction.Scale(t)
	// Retag the dimensionless direction offset with the point's unit so
	// the translation is unit-consistent.
	moved := make([]float64, l.Dimension())
	for i := 0; i < l.Dimension(); i++ {
		moved[i] = l.point.Position().At(i) + offset.At(i)
	}
	return MustPoint(moved, l.point.Position().Unit())
}

// IsParallel reports whether two lines have parallel directions:
// cross product near zero in 3D, determinant near zero in 2D, and
// componentwise ratio agreement in general dimension.
func (l Line) IsParallel(other Line, tol float64) (bool, error) {
	tol = normTol(tol)
	if l.Dimension() != other.Dimension() {
		return false, &algebra.DimensionError{
			Op:   "parallel check",
			Want: strconv.Itoa(l.Dimension()),
			Got:  strconv.Itoa(other.Dimension()),
		}
	}
	switch l.Dimension() {
	case 3:
		cross, err := l.direction.Cross(other.direction)
		if err != nil {
			return false, err
		}
		return cross.IsZero(tol), nil
	case 2:
		det := l.direction.At(0)*other.direction.At(1) - l.direction.At(1)*other.direction.At(0)
		return math.Abs(det) < tol, nil
	default:
		return ratiosAgree(l.direction, other.direction, tol), nil
	}
}

// ratiosAgree reports whether b is a scalar multiple of a.
func ratiosAgree(a, b algebra.Vector, tol float64) bool {
	ratio := math.NaN()
	for i := 0; i < a.Dimension(); i++ {
		ai, bi := a.At(i), b.At(i)
		if math.Abs(ai) < tol {
			if math.Abs(bi) >= tol {
				return false
			}
			continue
		}
		if math.Abs(bi) < tol {
			return false
		}
		r := bi / ai
		if math.IsNaN(ratio) {
			ratio = r
		} else if math.Abs(ratio-r) > tol {
			return false
		}
	}
	return true
}

// IsCoincident reports whether two lines describe the same point set:
// parallel directions and the other line's point lying on this line.
func (l Line) IsCoincident(other Line, tol float64) (bool, error) {
	tol = normTol(tol)
	parallel, err := l.IsParallel(other, tol)
	if err != nil || !parallel {
		return false, err
	}
	return l.ContainsPoint(other.point, tol)
}

// ContainsPoint reports whether a point lies on the line.
func (l Line) ContainsPoint(p Point, tol float64) (bool, error) {
	tol = normTol(tol)
	diff, err := p.Position().Sub(l.point.Position())
	if err != nil {
		return false, err
	}
	if diff.IsZero(tol) {
		return true, nil
	}
	if l.Dimension() == 3 {
		// Retag so the cross with the dimensionless direction is unit-consistent.
		d := algebra.MustVector(diff.Components(), units.Unitless)
		cross, err := d.Cross(l.direction)
		if err != nil {
			return false, err
		}
		return cross.IsZero(tol), nil
	}
	d := algebra.MustVector(diff.Components(), units.Unitless)
	return ratiosAgree(l.direction, d, tol), nil
}

// DistanceToPoint returns the shortest distance from the line to a point.
func (l Line) DistanceToPoint(p Point) (units.Scalar, error) {
	diff, err := p.Position().Sub(l.point.Position())
	if err != nil {
		return units.Scalar{}, err
	}
	// Projection length of diff onto the unit direction.
	proj := 0.0
	for i := 0; i < l.Dimension(); i++ {
		proj += diff.At(i) * l.direction.At(i)
	}
	perp := make([]float64, l.Dimension())
	for i := 0; i < l.Dimension(); i++ {
		perp[i] = diff.At(i) - proj*l.direction.At(i)
	}
	return algebra.MustVector(perp, diff.Unit()).Norm(), nil
}
