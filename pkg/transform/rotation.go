package transform

import (
	"fmt"
	"math"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/units"
)

// Axis tags an axis-aligned rotation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// ParseAxis converts "x"/"y"/"z" to an Axis tag.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("axis must be \"x\", \"y\", or \"z\", got %q", s)
	}
}

// Rotation is an immutable 3D rotation about an axis-aligned or
// arbitrary axis. The angle must be a Scalar in radians; degrees are
// rejected, never converted. The rotation matrix is precomputed at
// construction.
type Rotation struct {
	axisTag  Axis
	axisVec  algebra.Vector // unit length; only set for arbitrary-axis rotations
	arbitrary bool
	angle    units.Scalar
	matrix   algebra.Matrix
}

var _ Transform = Rotation{}

// checkRadians rejects any angle Scalar that is not strictly radians.
func checkRadians(angle units.Scalar) error {
	if angle.Unit.Dim != units.Angle {
		return &units.UnitError{Left: units.Radian, Right: angle.Unit, Op: "rotation angle"}
	}
	if angle.Unit.Kind != units.Radians {
		return &units.AngleUnitError{Want: units.Radians, Got: angle.Unit.Kind, Op: "rotation angle"}
	}
	return nil
}

// NewRotation creates an axis-aligned rotation by the given angle.
func NewRotation(axis Axis, angle units.Scalar) (Rotation, error) {
	if err := checkRadians(angle); err != nil {
		return Rotation{}, err
	}
	return Rotation{
		axisTag: axis,
		angle:   angle,
		matrix:  axisMatrix(axis, angle.Value),
	}, nil
}

// NewAxisRotation creates a rotation about an arbitrary 3D axis using
// Rodrigues' formula. The axis is normalized; a zero axis is rejected.
func NewAxisRotation(axis algebra.Vector, angle units.Scalar) (Rotation, error) {
	if err := checkRadians(angle); err != nil {
		return Rotation{}, err
	}
	if axis.Dimension() != 3 {
		return Rotation{}, &algebra.DimensionError{Op: "rotation axis", Want: "3", Got: fmt.Sprintf("%d", axis.Dimension())}
	}
	if axis.IsZero(0) {
		return Rotation{}, &algebra.ZeroVectorError{Op: "rotation axis"}
	}
	unit, err := axis.Normalize()
	if err != nil {
		return Rotation{}, err
	}
	m, err := rodrigues(unit, angle.Value)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{
		axisVec:   unit,
		arbitrary: true,
		angle:     angle,
		matrix:    m,
	}, nil
}

// axisMatrix returns the closed-form 3x3 rotation matrix for an
// axis-aligned rotation.
func axisMatrix(axis Axis, theta float64) algebra.Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	switch axis {
	case AxisX:
		return algebra.MustMatrix([][]float64{
			{1, 0, 0},
			{0, c, -s},
			{0, s, c},
		})
	case AxisY:
		return algebra.MustMatrix([][]float64{
			{c, 0, s},
			{0, 1, 0},
			{-s, 0, c},
		})
	default: // AxisZ
		return algebra.MustMatrix([][]float64{
			{c, -s, 0},
			{s, c, 0},
			{0, 0, 1},
		})
	}
}

// rodrigues builds R = I + sin(theta)*K + (1-cos(theta))*K^2 where K is
// the skew-symmetric cross-product matrix of the unit axis.
func rodrigues(axis algebra.Vector, theta float64) (algebra.Matrix, error) {
	ux, uy, uz := axis.At(0), axis.At(1), axis.At(2)
	k := algebra.MustMatrix([][]float64{
		{0, -uz, uy},
		{uz, 0, -ux},
		{-uy, ux, 0},
	})
	k2, err := k.Mul(k)
	if err != nil {
		return algebra.Matrix{}, err
	}
	s, c := math.Sin(theta), math.Cos(theta)
	r, err := algebra.Identity(3).Add(k.Scale(s))
	if err != nil {
		return algebra.Matrix{}, err
	}
	return r.Add(k2.Scale(1 - c))
}

// Angle returns the rotation angle in radians.
func (r Rotation) Angle() units.Scalar { return r.angle }

// IsArbitraryAxis reports whether the rotation is about an arbitrary axis.
func (r Rotation) IsArbitraryAxis() bool { return r.arbitrary }

// AxisTag returns the axis tag for axis-aligned rotations.
func (r Rotation) AxisTag() Axis { return r.axisTag }

// AxisVector returns the unit axis for arbitrary-axis rotations.
func (r Rotation) AxisVector() algebra.Vector { return r.axisVec }

// AsMatrix returns the precomputed 3x3 rotation matrix.
func (r Rotation) AsMatrix() algebra.Matrix { return r.matrix }

func (r Rotation) String() string {
	if r.arbitrary {
		return fmt.Sprintf("Rotation(axis=custom, angle=%s)", r.angle)
	}
	return fmt.Sprintf("Rotation(axis=%s, angle=%s)", r.axisTag, r.angle)
}

// ApplyToVector rotates a 3D vector.
func (r Rotation) ApplyToVector(v algebra.Vector) (algebra.Vector, error) {
	if v.Dimension() != 3 {
		return algebra.Vector{}, &algebra.DimensionError{Op: "rotation application", Want: "3", Got: fmt.Sprintf("%d", v.Dimension())}
	}
	return r.matrix.Apply(v)
}

// ApplyToPoint rotates a 3D point about the origin.
func (r Rotation) ApplyToPoint(p geometry.Point) (geometry.Point, error) {
	rotated, err := r.ApplyToVector(p.Position())
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.PointFromVector(rotated), nil
}

// Inverse returns the rotation by the opposite angle about the same axis.
func (r Rotation) Inverse() Rotation {
	if r.arbitrary {
		inv, _ := NewAxisRotation(r.axisVec, r.angle.Neg())
		return inv
	}
	inv, _ := NewRotation(r.axisTag, r.angle.Neg())
	return inv
}

// Compose refuses to produce a new axis-angle Rotation: that would
// require extracting axis and angle from the product matrix. Compose
// via ComposeAffine (or the underlying matrices) instead.
func (r Rotation) Compose(other Rotation) (Rotation, error) {
	return Rotation{}, &CompositionError{
		Op:     "rotation composition",
		Reason: "axis-angle extraction from a matrix product is unsupported; compose via ComposeAffine or AsMatrix",
	}
}

// ComposeAffine composes two rotations as an Affine transform over the
// product of their matrices.
func (r Rotation) ComposeAffine(other Rotation) (Affine, error) {
	m, err := r.matrix.Mul(other.matrix)
	if err != nil {
		return Affine{}, err
	}
	return NewAffine(m, algebra.Zero(3, units.Unitless))
}
