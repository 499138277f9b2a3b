// Package transform implements the rigid and affine transforms of the
// Armature kernel: Rotation, Translation, Scale, Affine, and Homogeneous.
// Transforms are immutable; each exposes ApplyToPoint and ApplyToVector.
// Free vectors represent direction, so pure translations leave them
// unchanged while points move.
package transform

import (
	"fmt"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
)

// Transform is implemented by every transform variant in this package.
// The implementer set is fixed: Rotation, Translation, Scale, Affine,
// and Homogeneous.
type Transform interface {
	ApplyToPoint(p geometry.Point) (geometry.Point, error)
	ApplyToVector(v algebra.Vector) (algebra.Vector, error)
}

// CompositionError reports a transform composition the kernel refuses
// to perform, such as composing two axis-angle rotations into a new
// axis-angle rotation (which would require matrix-to-axis-angle
// extraction).
type CompositionError struct {
	Op     string
	Reason string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("cannot compose in %s: %s", e.Op, e.Reason)
}

// PerspectiveDivideError reports a homogeneous application whose
// resulting weight is too close to zero to divide by.
type PerspectiveDivideError struct {
	W float64
}

func (e *PerspectiveDivideError) Error() string {
	return fmt.Sprintf("invalid homogeneous coordinate (w = %g, too close to zero)", e.W)
}
