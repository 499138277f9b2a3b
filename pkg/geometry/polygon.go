package geometry

import (
	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/units"
)

// Polygon is an ordered sequence of at least three vertices sharing a
// dimension. Vertices are closed implicitly: the last edge runs back to
// the first vertex.
type Polygon struct {
	vertices []Point
}

// NewPolygon creates a polygon from vertices.
func NewPolygon(vertices []Point) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, &GeometryError{Op: "polygon creation", Reason: "polygon must have at least 3 vertices"}
	}
	dim := vertices[0].Dimension()
	for _, v := range vertices {
		if v.Dimension() != dim {
			return Polygon{}, &GeometryError{Op: "polygon creation", Reason: "all vertices must have same dimension"}
		}
	}
	cp := make([]Point, len(vertices))
	copy(cp, vertices)
	return Polygon{vertices: cp}, nil
}

// Kind implements Primitive.
func (pg Polygon) Kind() Kind { return KindPolygon }

// NumVertices returns the vertex count.
func (pg Polygon) NumVertices() int { return len(pg.vertices) }

// Dimension returns the shared vertex dimension.
func (pg Polygon) Dimension() int { return pg.vertices[0].Dimension() }

// Vertex returns the vertex at index i.
func (pg Polygon) Vertex(i int) Point { return pg.vertices[i] }

// Vertices returns a copy of the vertex slice.
func (pg Polygon) Vertices() []Point {
	cp := make([]Point, len(pg.vertices))
	copy(cp, pg.vertices)
	return cp
}

// EdgeVector returns the vector from vertex i to vertex i+1 (wrapping).
func (pg Polygon) EdgeVector(i int) (algebra.Vector, error) {
	next := (i + 1) % len(pg.vertices)
	return pg.vertices[next].Position().Sub(pg.vertices[i].Position())
}

// Perimeter returns the sum of edge lengths.
func (pg Polygon) Perimeter() (units.Scalar, error) {
	total := 0.0
	unit := pg.vertices[0].Position().Unit()
	for i := range pg.vertices {
		edge, err := pg.EdgeVector(i)
		if err != nil {
			return units.Scalar{}, err
		}
		total += edge.Norm().Value
	}
	return units.NewScalar(total, unit), nil
}

// Centroid returns the vertex centroid (arithmetic mean of positions).
func (pg Polygon) Centroid() (Point, error) {
	sum := algebra.Zero(pg.Dimension(), pg.vertices[0].Position().Unit())
	for _, v := range pg.vertices {
		var err error
		sum, err = sum.Add(v.Position())
		if err != nil {
			return Point{}, err
		}
	}
	return PointFromVector(sum.Scale(1.0 / float64(len(pg.vertices)))), nil
}
