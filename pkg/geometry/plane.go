package geometry

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/units"
)

// Plane is an infinite plane in 3D: a point on the plane plus a
// unit-length normal. Planes are only defined in 3D space.
type Plane struct {
	point  Point
	normal algebra.Vector // unit length, dimensionless
}

// NewPlane creates a plane through point with the given normal.
func NewPlane(point Point, normal algebra.Vector) (Plane, error) {
	if point.Dimension() != 3 {
		return Plane{}, &GeometryError{Op: "plane creation", Reason: "planes are only defined in 3D space"}
	}
	if normal.Dimension() != 3 {
		return Plane{}, &algebra.DimensionError{Op: "plane normal", Want: "3", Got: strconv.Itoa(normal.Dimension())}
	}
	if normal.IsZero(0) {
		return Plane{}, &algebra.ZeroVectorError{Op: "plane normal"}
	}
	n, err := normal.Normalize()
	if err != nil {
		return Plane{}, err
	}
	return Plane{point: point, normal: n}, nil
}

// PlaneFromThreePoints creates the plane through three non-collinear
// 3D points.
func PlaneFromThreePoints(p1, p2, p3 Point) (Plane, error) {
	if p1.Dimension() != 3 || p2.Dimension() != 3 || p3.Dimension() != 3 {
		return Plane{}, &GeometryError{Op: "plane from three points", Reason: "all points must be in 3D space"}
	}
	v1, err := p2.Position().Sub(p1.Position())
	if err != nil {
		return Plane{}, err
	}
	v2, err := p3.Position().Sub(p1.Position())
	if err != nil {
		return Plane{}, err
	}
	normal, err := v1.Cross(v2)
	if err != nil {
		return Plane{}, err
	}
	if normal.IsZero(0) {
		return Plane{}, &GeometryError{Op: "plane from three points", Reason: "points are collinear"}
	}
	return NewPlane(p1, normal)
}

// PlaneFromPointAndVectors creates the plane through point spanned by
// two non-parallel 3D vectors.
func PlaneFromPointAndVectors(point Point, v1, v2 algebra.Vector) (Plane, error) {
	if point.Dimension() != 3 || v1.Dimension() != 3 || v2.Dimension() != 3 {
		return Plane{}, &GeometryError{Op: "plane from point and vectors", Reason: "all inputs must be in 3D space"}
	}
	normal, err := v1.Cross(v2)
	if err != nil {
		return Plane{}, err
	}
	if normal.IsZero(0) {
		return Plane{}, &GeometryError{Op: "plane from point and vectors", Reason: "vectors are parallel"}
	}
	return NewPlane(point, normal)
}

// Kind implements Primitive.
func (pl Plane) Kind() Kind { return KindPlane }

// Point returns a point on the plane.
func (pl Plane) Point() Point { return pl.point }

// Normal returns the unit-length normal.
func (pl Plane) Normal() algebra.Vector { return pl.normal }

func (pl Plane) String() string {
	return fmt.Sprintf("Plane(point=%s, normal=%s)", pl.point, pl.normal)
}

// SignedDistance returns the signed distance from the plane to a point:
// positive on the normal side, negative on the other.
func (pl Plane) SignedDistance(p Point) (units.Scalar, error) {
	if p.Dimension() != 3 {
		return units.Scalar{}, &algebra.DimensionError{Op: "plane distance", Want: "3", Got: strconv.Itoa(p.Dimension())}
	}
	diff, err := p.Position().Sub(pl.point.Position())
	if err != nil {
		return units.Scalar{}, err
	}
	d := 0.0
	for i := 0; i < 3; i++ {
		d += diff.At(i) * pl.normal.At(i)
	}
	return units.NewScalar(d, diff.Unit()), nil
}

// Distance returns the absolute distance from the plane to a point.
func (pl Plane) Distance(p Point) (units.Scalar, error) {
	signed, err := pl.SignedDistance(p)
	if err != nil {
		return units.Scalar{}, err
	}
	return signed.Abs(), nil
}

// ContainsPoint reports whether a point lies on the plane.
func (pl Plane) ContainsPoint(p Point, tol float64) (bool, error) {
	tol = normTol(tol)
	signed, err := pl.SignedDistance(p)
	if err != nil {
		return false, err
	}
	return math.Abs(signed.Value) < tol, nil
}

// ProjectPoint returns the orthogonal projection of a point onto the plane.
func (pl Plane) ProjectPoint(p Point) (Point, error) {
	signed, err := pl.SignedDistance(p)
	if err != nil {
		return Point{}, err
	}
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = p.Position().At(i) - signed.Value*pl.normal.At(i)
	}
	return NewPoint(out, p.Position().Unit())
}

// IsParallel reports whether two planes have parallel normals.
func (pl Plane) IsParallel(other Plane, tol float64) (bool, error) {
	tol = normTol(tol)
	cross, err := pl.normal.Cross(other.normal)
	if err != nil {
		return false, err
	}
	return cross.IsZero(tol), nil
}

// IsCoincident reports whether two planes describe the same point set.
func (pl Plane) IsCoincident(other Plane, tol float64) (bool, error) {
	tol = normTol(tol)
	parallel, err := pl.IsParallel(other, tol)
	if err != nil || !parallel {
		return false, err
	}
	return pl.ContainsPoint(other.point, tol)
}
