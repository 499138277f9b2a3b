// Package solid defines the abstract solid modeling interface used for
// interference previews and mesh export. Implementations provide
// primitives, boolean operations, and tessellation behind the Builder
// interface so backends can be swapped without changing callers.
package solid

import (
	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/transform"
)

// Solid is an opaque handle to a backend solid. Implementations wrap
// their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Builder is the abstract solid modeling interface.
type Builder interface {
	// Primitives. Boxes and cylinders are centered on the origin.
	Box(x, y, z float64) (Solid, error)
	Cylinder(height, radius float64) (Solid, error)

	// Extrude sweeps a planar polygon along z by the given height.
	// The polygon's x and y coordinates define the profile.
	Extrude(profile geometry.Polygon, height float64) (Solid, error)

	// Boolean operations.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms.
	Translate(s Solid, offset algebra.Vector) (Solid, error)
	Rotate(s Solid, r transform.Rotation) Solid
	ScaleUniform(s Solid, factor float64) (Solid, error)

	// ToMesh tessellates the solid into triangles.
	ToMesh(s Solid) (*Mesh, error)
}
