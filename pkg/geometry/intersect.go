package geometry

import (
	"math"
)

// IntersectionKind tags the payload of an Intersection.
type IntersectionKind int

const (
	IntersectEmpty IntersectionKind = iota
	IntersectPoint
	IntersectLine
	IntersectPlane
)

func (k IntersectionKind) String() string {
	switch k {
	case IntersectEmpty:
		return "empty"
	case IntersectPoint:
		return "point"
	case IntersectLine:
		return "line"
	case IntersectPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Intersection is the three-outcome result of an intersection routine:
// a point, a degenerate containment (line or plane), or an explicit
// empty result carrying a human-readable reason. It is never absent.
type Intersection struct {
	kind   IntersectionKind
	point  Point
	line   Line
	plane  Plane
	reason string
}

func emptyIntersection(reason string) Intersection {
	return Intersection{kind: IntersectEmpty, reason: reason}
}

func pointIntersection(p Point) Intersection {
	return Intersection{kind: IntersectPoint, point: p}
}

func lineIntersection(l Line) Intersection {
	return Intersection{kind: IntersectLine, line: l}
}

func planeIntersection(pl Plane) Intersection {
	return Intersection{kind: IntersectPlane, plane: pl}
}

// Kind returns the payload tag.
func (r Intersection) Kind() IntersectionKind { return r.kind }

// Exists reports whether any intersection was found.
func (r Intersection) Exists() bool { return r.kind != IntersectEmpty }

// Reason returns the explanation for an empty result.
func (r Intersection) Reason() string { return r.reason }

// Point returns the point payload; valid only when Kind is IntersectPoint.
func (r Intersection) Point() Point { return r.point }

// Line returns the line payload; valid only when Kind is IntersectLine.
func (r Intersection) Line() Line { return r.line }

// Plane returns the plane payload; valid only when Kind is IntersectPlane.
func (r Intersection) Plane() Plane { return r.plane }

func (r Intersection) String() string {
	switch r.kind {
	case IntersectPoint:
		return r.point.String()
	case IntersectLine:
		return r.line.String()
	case IntersectPlane:
		return r.plane.String()
	default:
		return "empty (" + r.reason + ")"
	}
}

// ---------------------------------------------------------------------------
// Pairwise routines
// ---------------------------------------------------------------------------

// IntersectLineLine computes the intersection of two lines.
// Outcomes: the first line (coincident), a point, or empty (parallel
// distinct lines, skew 3D lines, or unsupported dimension).
func IntersectLineLine(a, b Line, tol float64) (Intersection, error) {
	tol = normTol(tol)

	coincident, err := a.IsCoincident(b, tol)
	if err != nil {
		return Intersection{}, err
	}
	if coincident {
		return lineIntersection(a), nil
	}

	parallel, err := a.IsParallel(b, tol)
	if err != nil {
		return Intersection{}, err
	}
	if parallel {
		return emptyIntersection("lines are parallel"), nil
	}

	switch a.Dimension() {
	case 2:
		return intersectLineLine2D(a, b, tol), nil
	case 3:
		return intersectLineLine3D(a, b, tol), nil
	default:
		return Intersection{}, &GeometryError{
			Op:     "line-line intersection",
			Reason: "only implemented for 2D and 3D",
		}
	}
}

// intersectLineLine2D solves the 2x2 parametric system
// p1 + t*d1 = p2 + s*d2.
func intersectLineLine2D(a, b Line, tol float64) Intersection {
	d1, d2 := a.Direction(), b.Direction()
	det := d1.At(0)*(-d2.At(1)) - d1.At(1)*(-d2.At(0))
	if math.Abs(det) < tol {
		return emptyIntersection("lines are parallel")
	}
	dx := b.Point().X() - a.Point().X()
	dy := b.Point().Y() - a.Point().Y()
	t := (dx*(-d2.At(1)) - dy*(-d2.At(0))) / det
	return pointIntersection(a.PointAt(t))
}

// intersectLineLine3D rejects skew lines by the scalar triple product
// (p2-p1)·(d1×d2), then solves for the parameter on the first line.
func intersectLineLine3D(a, b Line, tol float64) Intersection {
	w := [3]float64{
		b.Point().X() - a.Point().X(),
		b.Point().Y() - a.Point().Y(),
		b.Point().Z() - a.Point().Z(),
	}
	d1, d2 := a.Direction(), b.Direction()
	crossD := cross3(
		[3]float64{d1.At(0), d1.At(1), d1.At(2)},
		[3]float64{d2.At(0), d2.At(1), d2.At(2)},
	)

	// Non-coplanar lines are skew.
	triple := w[0]*crossD[0] + w[1]*crossD[1] + w[2]*crossD[2]
	if math.Abs(triple) > tol {
		return emptyIntersection("lines are skew (not coplanar)")
	}

	crossNormSq := crossD[0]*crossD[0] + crossD[1]*crossD[1] + crossD[2]*crossD[2]
	if crossNormSq < tol {
		return emptyIntersection("lines are parallel")
	}

	wCrossD2 := cross3(w, [3]float64{d2.At(0), d2.At(1), d2.At(2)})
	t := (wCrossD2[0]*crossD[0] + wCrossD2[1]*crossD[1] + wCrossD2[2]*crossD[2]) / crossNormSq
	return pointIntersection(a.PointAt(t))
}

// IntersectLinePlane computes the intersection of a line and a plane.
// Outcomes: the line (contained in the plane), a point, or empty
// (parallel). 3D only.
func IntersectLinePlane(l Line, pl Plane, tol float64) (Intersection, error) {
	tol = normTol(tol)
	if l.Dimension() != 3 {
		return Intersection{}, &GeometryError{Op: "line-plane intersection", Reason: "only defined for 3D"}
	}

	dot := 0.0
	for i := 0; i < 3; i++ {
		dot += l.Direction().At(i) * pl.Normal().At(i)
	}

	// Direction perpendicular to the normal: the line is parallel to the
	// plane, either inside it or disjoint.
	if math.Abs(dot) < tol {
		contained, err := pl.ContainsPoint(l.Point(), tol)
		if err != nil {
			return Intersection{}, err
		}
		if contained {
			return lineIntersection(l), nil
		}
		return emptyIntersection("line is parallel to plane"), nil
	}

	diff, err := l.Point().Position().Sub(pl.Point().Position())
	if err != nil {
		return Intersection{}, err
	}
	num := 0.0
	for i := 0; i < 3; i++ {
		num += diff.At(i) * pl.Normal().At(i)
	}
	t := -num / dot
	return pointIntersection(l.PointAt(t)), nil
}

// IntersectPlanePlane computes the intersection of two planes.
// Outcomes: the first plane (coincident), a line, or empty (parallel).
func IntersectPlanePlane(a, b Plane, tol float64) (Intersection, error) {
	tol = normTol(tol)

	coincident, err := a.IsCoincident(b, tol)
	if err != nil {
		return Intersection{}, err
	}
	if coincident {
		return planeIntersection(a), nil
	}

	parallel, err := a.IsParallel(b, tol)
	if err != nil {
		return Intersection{}, err
	}
	if parallel {
		return emptyIntersection("planes are parallel"), nil
	}

	// The line direction is perpendicular to both normals.
	direction, err := a.Normal().Cross(b.Normal())
	if err != nil {
		return Intersection{}, err
	}

	// Find a point on the line: zero the coordinate where the direction
	// has its largest magnitude and solve the remaining 2x2 system
	// n1·p = n1·p1, n2·p = n2·p2.
	n1 := [3]float64{a.Normal().At(0), a.Normal().At(1), a.Normal().At(2)}
	n2 := [3]float64{b.Normal().At(0), b.Normal().At(1), b.Normal().At(2)}
	c1 := n1[0]*a.Point().X() + n1[1]*a.Point().Y() + n1[2]*a.Point().Z()
	c2 := n2[0]*b.Point().X() + n2[1]*b.Point().Y() + n2[2]*b.Point().Z()

	maxIdx := 0
	maxMag := math.Abs(direction.At(0))
	for i := 1; i < 3; i++ {
		if m := math.Abs(direction.At(i)); m > maxMag {
			maxIdx, maxMag = i, m
		}
	}

	// Remaining coordinate indices after zeroing maxIdx.
	u, v := (maxIdx+1)%3, (maxIdx+2)%3
	det := n1[u]*n2[v] - n1[v]*n2[u]
	coords := [3]float64{}
	if math.Abs(det) >= tol {
		coords[u] = (c1*n2[v] - c2*n1[v]) / det
		coords[v] = (n1[u]*c2 - n2[u]*c1) / det
	}

	point, err := NewPoint(coords[:], a.Point().Position().Unit())
	if err != nil {
		return Intersection{}, err
	}
	line, err := NewLine(point, direction)
	if err != nil {
		return Intersection{}, err
	}
	return lineIntersection(line), nil
}

// cross3 is the raw-component 3D cross product.
func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// ---------------------------------------------------------------------------
// Generic dispatch
// ---------------------------------------------------------------------------

// intersectFunc is a pairwise intersection routine over type-erased
// primitives.
type intersectFunc func(a, b Primitive, tol float64) (Intersection, error)

// pairKey identifies an ordered primitive pairing.
type pairKey struct {
	a, b Kind
}

// dispatch is the explicit routine table keyed by primitive-kind pair.
var dispatch = map[pairKey]intersectFunc{
	{KindLine, KindLine}: func(a, b Primitive, tol float64) (Intersection, error) {
		return IntersectLineLine(a.(Line), b.(Line), tol)
	},
	{KindLine, KindPlane}: func(a, b Primitive, tol float64) (Intersection, error) {
		return IntersectLinePlane(a.(Line), b.(Plane), tol)
	},
	{KindPlane, KindLine}: func(a, b Primitive, tol float64) (Intersection, error) {
		return IntersectLinePlane(b.(Line), a.(Plane), tol)
	},
	{KindPlane, KindPlane}: func(a, b Primitive, tol float64) (Intersection, error) {
		return IntersectPlanePlane(a.(Plane), b.(Plane), tol)
	},
}

// Intersect selects the pairwise routine for the runtime variants of its
// two arguments. Pairings without a routine fail with
// UnsupportedIntersectionError.
func Intersect(a, b Primitive, tol float64) (Intersection, error) {
	fn, ok := dispatch[pairKey{a.Kind(), b.Kind()}]
	if !ok {
		return Intersection{}, &UnsupportedIntersectionError{A: a.Kind(), B: b.Kind()}
	}
	return fn(a, b, tol)
}
