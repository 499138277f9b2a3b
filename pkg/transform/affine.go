package transform

import (
	"fmt"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/units"
)

// Affine is the transform x' = Ax + b for a square linear part A and a
// translation b. It is the common currency the other transforms lower
// into, and the only representation that composes freely.
//
// The translation components are interpreted in whatever unit the
// transformed point carries; the linear part is unit-free.
type Affine struct {
	linear      algebra.Matrix
	translation algebra.Vector
}

var _ Transform = Affine{}

// NewAffine creates an affine transform from a square linear part and a
// translation of matching dimension.
func NewAffine(linear algebra.Matrix, translation algebra.Vector) (Affine, error) {
	if !linear.IsSquare() {
		return Affine{}, &algebra.DimensionError{
			Op:   "affine construction",
			Want: "square linear part",
			Got:  linear.Shape(),
		}
	}
	if translation.Dimension() != linear.Rows() {
		return Affine{}, &algebra.DimensionError{
			Op:   "affine construction",
			Want: fmt.Sprintf("%d", linear.Rows()),
			Got:  fmt.Sprintf("%d", translation.Dimension()),
		}
	}
	return Affine{linear: linear, translation: translation}, nil
}

// IdentityAffine returns the n-dimensional identity transform.
func IdentityAffine(n int) Affine {
	return Affine{
		linear:      algebra.Identity(n),
		translation: algebra.Zero(n, units.Unitless),
	}
}

// FromRotation lowers a rotation into an affine with zero translation.
func FromRotation(r Rotation) Affine {
	return Affine{
		linear:      r.AsMatrix(),
		translation: algebra.Zero(3, units.Unitless),
	}
}

// FromTranslation lowers a translation into an affine with an identity
// linear part.
func FromTranslation(t Translation) Affine {
	return Affine{
		linear:      algebra.Identity(t.Offset().Dimension()),
		translation: t.Offset(),
	}
}

// FromScale lowers a scale into an affine with zero translation.
func FromScale(s Scale) Affine {
	return Affine{
		linear:      s.AsMatrix(),
		translation: algebra.Zero(s.Dimension(), units.Unitless),
	}
}

// Linear returns the linear part A.
func (a Affine) Linear() algebra.Matrix { return a.linear }

// Translation returns the translation part b.
func (a Affine) Translation() algebra.Vector { return a.translation }

// Dimension returns the dimension the transform acts on.
func (a Affine) Dimension() int { return a.linear.Rows() }

func (a Affine) String() string {
	return fmt.Sprintf("Affine(linear=%s, translation=%s)", a.linear.Shape(), a.translation)
}

// ApplyToPoint computes Ax + b. The result keeps the point's unit; the
// translation components are added raw.
func (a Affine) ApplyToPoint(p geometry.Point) (geometry.Point, error) {
	pos := p.Position()
	linear, err := a.linear.Apply(pos)
	if err != nil {
		return geometry.Point{}, err
	}
	out := make([]float64, linear.Dimension())
	for i := range out {
		out[i] = linear.At(i) + a.translation.At(i)
	}
	v, err := algebra.NewVector(out, pos.Unit())
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.PointFromVector(v), nil
}

// ApplyToVector applies only the linear part: free vectors ignore
// translation.
func (a Affine) ApplyToVector(v algebra.Vector) (algebra.Vector, error) {
	return a.linear.Apply(v)
}

// Compose returns the transform equivalent to applying other first and
// then a: (a ∘ other)(x) = A1*(A2*x + b2) + b1.
func (a Affine) Compose(other Affine) (Affine, error) {
	if a.Dimension() != other.Dimension() {
		return Affine{}, &CompositionError{
			Op:     "affine composition",
			Reason: fmt.Sprintf("dimension mismatch: %d vs %d", a.Dimension(), other.Dimension()),
		}
	}
	linear, err := a.linear.Mul(other.linear)
	if err != nil {
		return Affine{}, err
	}
	rotated, err := a.linear.Apply(other.translation)
	if err != nil {
		return Affine{}, err
	}
	out := make([]float64, rotated.Dimension())
	for i := range out {
		out[i] = rotated.At(i) + a.translation.At(i)
	}
	translation, err := algebra.NewVector(out, a.translation.Unit())
	if err != nil {
		return Affine{}, err
	}
	return Affine{linear: linear, translation: translation}, nil
}

// Inverse returns the transform x = A^-1(x' - b). Fails when the
// linear part is singular.
func (a Affine) Inverse() (Affine, error) {
	inv, err := a.linear.Inverse()
	if err != nil {
		return Affine{}, err
	}
	negated, err := inv.Apply(a.translation.Neg())
	if err != nil {
		return Affine{}, err
	}
	return Affine{linear: inv, translation: negated}, nil
}
