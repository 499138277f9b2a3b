// Package sdfx implements the solid.Builder interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/solid"
	"github.com/chazu/armature/pkg/transform"
)

// Compile-time interface check.
var _ solid.Builder = (*Builder)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement solid.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// Builder implements solid.Builder using sdfx.
type Builder struct {
	meshCells int
}

// New returns a Builder with the default tessellation resolution.
func New() *Builder {
	return &Builder{meshCells: defaultMeshCells}
}

// NewWithCells returns a Builder with a custom marching cubes cell
// count.
func NewWithCells(cells int) *Builder {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	return &Builder{meshCells: cells}
}

// unwrap extracts the underlying sdf.SDF3 from a solid.Solid.
func unwrap(s solid.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a solid.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) solid.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a box with the given dimensions, centered on the origin.
func (b *Builder) Box(x, y, z float64) (solid.Solid, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx box: %w", err)
	}
	return wrap(s), nil
}

// Cylinder creates a cylinder with the given height and radius,
// centered on the origin.
func (b *Builder) Cylinder(height, radius float64) (solid.Solid, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx cylinder: %w", err)
	}
	return wrap(s), nil
}

// Extrude sweeps the polygon's x/y profile along z by the given
// height.
func (b *Builder) Extrude(profile geometry.Polygon, height float64) (solid.Solid, error) {
	points := make([]v2.Vec, profile.NumVertices())
	for i := range points {
		v := profile.Vertex(i)
		points[i] = v2.Vec{X: v.X(), Y: v.Y()}
	}
	poly, err := sdf.Polygon2D(points)
	if err != nil {
		return nil, fmt.Errorf("sdfx polygon: %w", err)
	}
	return wrap(sdf.Extrude3D(poly, height)), nil
}

// Union returns the union of two solids.
func (b *Builder) Union(a, c solid.Solid) solid.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(c)))
}

// Difference returns the difference a - c.
func (b *Builder) Difference(a, c solid.Solid) solid.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(c)))
}

// Intersection returns the intersection of two solids.
func (b *Builder) Intersection(a, c solid.Solid) solid.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(c)))
}

// Translate moves a solid by the offset vector, which must be 3D.
func (b *Builder) Translate(s solid.Solid, offset algebra.Vector) (solid.Solid, error) {
	if offset.Dimension() != 3 {
		return nil, &algebra.DimensionError{Op: "solid translation", Want: "3", Got: fmt.Sprintf("%d", offset.Dimension())}
	}
	m := sdf.Translate3d(v3.Vec{X: offset.At(0), Y: offset.At(1), Z: offset.At(2)})
	return wrap(sdf.Transform3D(unwrap(s), m)), nil
}

// Rotate rotates a solid about the origin.
func (b *Builder) Rotate(s solid.Solid, r transform.Rotation) solid.Solid {
	var m sdf.M44
	if r.IsArbitraryAxis() {
		axis := r.AxisVector()
		m = sdf.Rotate3d(v3.Vec{X: axis.At(0), Y: axis.At(1), Z: axis.At(2)}, r.Angle().Value)
	} else {
		switch r.AxisTag() {
		case transform.AxisX:
			m = sdf.RotateX(r.Angle().Value)
		case transform.AxisY:
			m = sdf.RotateY(r.Angle().Value)
		default:
			m = sdf.RotateZ(r.Angle().Value)
		}
	}
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ScaleUniform scales a solid by the same factor on every axis.
func (b *Builder) ScaleUniform(s solid.Solid, factor float64) (solid.Solid, error) {
	if factor == 0 {
		return nil, &geometry.GeometryError{Op: "solid scale", Reason: "scale factor is zero"}
	}
	return wrap(sdf.ScaleUniform3D(unwrap(s), factor)), nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (b *Builder) ToMesh(s solid.Solid) (*solid.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(b.meshCells)
	triangles := render.ToTriangles(sdf3, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &solid.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
