package kinematics

import (
	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/transform"
	"github.com/chazu/armature/pkg/units"
)

// Joint produces a transform from a single parameter. The implementer
// set is fixed: RevoluteJoint and PrismaticJoint.
type Joint interface {
	Transform(param units.Scalar) (transform.Transform, error)
}

// RevoluteJoint rotates about one of the coordinate axes. The
// parameter is an angle and must be in radians.
type RevoluteJoint struct {
	Axis transform.Axis
}

// Transform returns the rotation by the given angle about the joint
// axis.
func (j RevoluteJoint) Transform(angle units.Scalar) (transform.Transform, error) {
	return transform.NewRotation(j.Axis, angle)
}

// PrismaticJoint slides along a direction vector. The parameter is a
// length; the offset keeps the parameter's unit.
type PrismaticJoint struct {
	Axis algebra.Vector
}

// Transform returns the translation by the axis scaled to the given
// distance.
func (j PrismaticJoint) Transform(distance units.Scalar) (transform.Transform, error) {
	if distance.Unit.Dim != units.Length {
		return nil, &units.UnitError{Left: units.Meter, Right: distance.Unit, Op: "prismatic joint parameter"}
	}
	scaled := make([]float64, j.Axis.Dimension())
	for i := range scaled {
		scaled[i] = j.Axis.At(i) * distance.Value
	}
	offset, err := algebra.NewVector(scaled, distance.Unit)
	if err != nil {
		return nil, err
	}
	return transform.NewTranslation(offset), nil
}
