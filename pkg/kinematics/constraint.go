package kinematics

import (
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/units"
)

// defaultConstraintTolerance bounds how far a point may sit from a
// constraint target and still satisfy it.
const defaultConstraintTolerance = 1e-6

// Constraint restricts where a point in a kinematic system may sit.
type Constraint interface {
	IsSatisfied(p geometry.Point) (bool, error)
	Violation(p geometry.Point) (units.Scalar, error)
}

// PositionConstraint pins a point to a target location within a
// tolerance. A zero Tolerance means the default of 1e-6.
type PositionConstraint struct {
	Target    geometry.Point
	Tolerance float64
}

var _ Constraint = PositionConstraint{}

func (c PositionConstraint) tolerance() float64 {
	if c.Tolerance == 0 {
		return defaultConstraintTolerance
	}
	return c.Tolerance
}

// IsSatisfied reports whether the point sits within tolerance of the
// target.
func (c PositionConstraint) IsSatisfied(p geometry.Point) (bool, error) {
	dist, err := p.DistanceTo(c.Target)
	if err != nil {
		return false, err
	}
	return dist.Value < c.tolerance(), nil
}

// Violation returns the distance from the point to the target.
func (c PositionConstraint) Violation(p geometry.Point) (units.Scalar, error) {
	return p.DistanceTo(c.Target)
}
