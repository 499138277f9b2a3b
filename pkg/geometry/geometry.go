// Package geometry implements the geometric primitives of the Armature
// kernel (Point, Line, Plane, Polygon, Polyhedron) and the pairwise
// intersection engine. All predicates are tolerance-parameterized;
// passing a non-positive tolerance selects the default 1e-9.
package geometry

import "fmt"

// DefaultTolerance is used by predicates when the caller passes tol <= 0.
const DefaultTolerance = 1e-9

// Kind identifies a primitive variant for dispatch and error reporting.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindPlane
	KindPolygon
	KindPolyhedron
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPlane:
		return "plane"
	case KindPolygon:
		return "polygon"
	case KindPolyhedron:
		return "polyhedron"
	default:
		return "unknown"
	}
}

// Primitive is implemented by every geometric primitive in this package.
// The implementer set is fixed; the intersection dispatcher enumerates it.
type Primitive interface {
	Kind() Kind
}

// GeometryError reports an impossible geometric configuration or an
// operation applied to an unsupported primitive.
type GeometryError struct {
	Op     string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid operation %q: %s", e.Op, e.Reason)
}

// UnsupportedIntersectionError reports an intersection request for a
// primitive pairing the engine has no routine for.
type UnsupportedIntersectionError struct {
	A Kind
	B Kind
}

func (e *UnsupportedIntersectionError) Error() string {
	return fmt.Sprintf("intersection not supported for %s and %s", e.A, e.B)
}

func normTol(tol float64) float64 {
	if tol <= 0 {
		return DefaultTolerance
	}
	return tol
}
