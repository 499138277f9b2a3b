package solid

import (
	"math"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/units"
)

// FromPolyhedron builds the axis-aligned bounding box of a polyhedron
// as a solid. The box is a coarse stand-in for interference previews,
// not an exact conversion.
func FromPolyhedron(b Builder, p geometry.Polyhedron) (Solid, error) {
	vertices := p.Vertices()
	if len(vertices) == 0 {
		return nil, &geometry.GeometryError{Op: "polyhedron solid", Reason: "polyhedron has no vertices"}
	}

	min := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range vertices {
		coords := [3]float64{v.X(), v.Y(), v.Z()}
		for i := range coords {
			min[i] = math.Min(min[i], coords[i])
			max[i] = math.Max(max[i], coords[i])
		}
	}

	box, err := b.Box(max[0]-min[0], max[1]-min[1], max[2]-min[2])
	if err != nil {
		return nil, err
	}
	center, err := algebra.NewVector([]float64{
		(min[0] + max[0]) / 2,
		(min[1] + max[1]) / 2,
		(min[2] + max[2]) / 2,
	}, units.Unitless)
	if err != nil {
		return nil, err
	}
	return b.Translate(box, center)
}
