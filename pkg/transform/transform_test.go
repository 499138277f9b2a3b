package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/units"
)

func radians(v float64) units.Scalar {
	return units.NewScalar(v, units.Radian)
}

func meterPoint(t *testing.T, coords ...float64) geometry.Point {
	t.Helper()
	p, err := geometry.NewPoint(coords, units.Meter)
	if err != nil {
		t.Fatalf("NewPoint: %v", err)
	}
	return p
}

func meterVector(t *testing.T, coords ...float64) algebra.Vector {
	t.Helper()
	v, err := algebra.NewVector(coords, units.Meter)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	return v
}

func pointClose(t *testing.T, got geometry.Point, want ...float64) {
	t.Helper()
	for i, w := range want {
		if !units.Close(got.Position().At(i), w, 1e-9) {
			t.Fatalf("component %d = %g, want %g (point %s)", i, got.Position().At(i), w, got)
		}
	}
}

func TestRotationRejectsDegrees(t *testing.T) {
	_, err := NewRotation(AxisZ, units.NewScalar(90, units.Degree))
	var angleErr *units.AngleUnitError
	if !errors.As(err, &angleErr) {
		t.Fatalf("expected AngleUnitError, got %v", err)
	}
	if angleErr.Got != units.Degrees {
		t.Fatalf("Got = %v, want Degrees", angleErr.Got)
	}
}

func TestRotationRejectsNonAngle(t *testing.T) {
	_, err := NewRotation(AxisX, units.NewScalar(1, units.Meter))
	var unitErr *units.UnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("expected UnitError, got %v", err)
	}
}

func TestRotationAxisAligned(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		in   []float64
		want []float64
	}{
		{"z rotates x to y", AxisZ, []float64{1, 0, 0}, []float64{0, 1, 0}},
		{"x rotates y to z", AxisX, []float64{0, 1, 0}, []float64{0, 0, 1}},
		{"y rotates z to x", AxisY, []float64{0, 0, 1}, []float64{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRotation(tt.axis, radians(math.Pi/2))
			if err != nil {
				t.Fatalf("NewRotation: %v", err)
			}
			got, err := r.ApplyToPoint(meterPoint(t, tt.in...))
			if err != nil {
				t.Fatalf("ApplyToPoint: %v", err)
			}
			pointClose(t, got, tt.want...)
		})
	}
}

func TestRotationRoundTrip(t *testing.T) {
	theta := 0.7
	forward, err := NewRotation(AxisZ, radians(theta))
	if err != nil {
		t.Fatalf("NewRotation: %v", err)
	}
	back, err := NewRotation(AxisZ, radians(-theta))
	if err != nil {
		t.Fatalf("NewRotation: %v", err)
	}
	p := meterPoint(t, 1, 2, 3)
	mid, err := forward.ApplyToPoint(p)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	got, err := back.ApplyToPoint(mid)
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	pointClose(t, got, 1, 2, 3)
}

func TestRotationInverseMatchesNegatedAngle(t *testing.T) {
	r, err := NewRotation(AxisY, radians(1.2))
	if err != nil {
		t.Fatalf("NewRotation: %v", err)
	}
	p := meterPoint(t, 3, -1, 2)
	rotated, err := r.ApplyToPoint(p)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	restored, err := r.Inverse().ApplyToPoint(rotated)
	if err != nil {
		t.Fatalf("inverse apply: %v", err)
	}
	pointClose(t, restored, 3, -1, 2)
}

func TestRodriguesDiagonalAxisPermutesBasis(t *testing.T) {
	axis := meterVector(t, 1, 1, 1)
	r, err := NewAxisRotation(axis, radians(2*math.Pi/3))
	if err != nil {
		t.Fatalf("NewAxisRotation: %v", err)
	}
	// A 120 degree turn about the space diagonal cycles x -> y -> z.
	got, err := r.ApplyToPoint(meterPoint(t, 1, 0, 0))
	if err != nil {
		t.Fatalf("ApplyToPoint: %v", err)
	}
	pointClose(t, got, 0, 1, 0)
}

func TestAxisRotationRejectsZeroAxis(t *testing.T) {
	_, err := NewAxisRotation(meterVector(t, 0, 0, 0), radians(1))
	var zeroErr *algebra.ZeroVectorError
	if !errors.As(err, &zeroErr) {
		t.Fatalf("expected ZeroVectorError, got %v", err)
	}
}

func TestRotationComposeRefused(t *testing.T) {
	a, _ := NewRotation(AxisX, radians(0.5))
	b, _ := NewRotation(AxisY, radians(0.5))
	_, err := a.Compose(b)
	var compErr *CompositionError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected CompositionError, got %v", err)
	}
}

func TestTranslationMovesPointsNotVectors(t *testing.T) {
	tr := NewTranslation(meterVector(t, 1, -2, 0.5))
	p, err := tr.ApplyToPoint(meterPoint(t, 0, 0, 0))
	if err != nil {
		t.Fatalf("ApplyToPoint: %v", err)
	}
	pointClose(t, p, 1, -2, 0.5)

	v := meterVector(t, 4, 5, 6)
	got, err := tr.ApplyToVector(v)
	if err != nil {
		t.Fatalf("ApplyToVector: %v", err)
	}
	if !got.Equal(v) {
		t.Fatalf("translated vector changed: %s", got)
	}
}

func TestTranslationUnitMismatch(t *testing.T) {
	tr := NewTranslation(meterVector(t, 1, 1, 1))
	p, err := geometry.NewPoint([]float64{0, 0, 0}, units.Second)
	if err != nil {
		t.Fatalf("NewPoint: %v", err)
	}
	_, err = tr.ApplyToPoint(p)
	var unitErr *units.UnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("expected UnitError, got %v", err)
	}
}

func TestScaleApplyAndCompose(t *testing.T) {
	s, err := NewScale([]float64{2, 3, 4})
	if err != nil {
		t.Fatalf("NewScale: %v", err)
	}
	got, err := s.ApplyToPoint(meterPoint(t, 1, 1, 1))
	if err != nil {
		t.Fatalf("ApplyToPoint: %v", err)
	}
	pointClose(t, got, 2, 3, 4)

	twice, err := s.Compose(s)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	got, err = twice.ApplyToPoint(meterPoint(t, 1, 1, 1))
	if err != nil {
		t.Fatalf("ApplyToPoint: %v", err)
	}
	pointClose(t, got, 4, 9, 16)
}

func TestScaleInverseZeroFactor(t *testing.T) {
	s, err := NewScale([]float64{2, 0, 1})
	if err != nil {
		t.Fatalf("NewScale: %v", err)
	}
	_, err = s.Inverse()
	var compErr *CompositionError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected CompositionError, got %v", err)
	}
}

func TestAffineComposeMatchesSequentialApplication(t *testing.T) {
	rot, err := NewRotation(AxisZ, radians(math.Pi/4))
	if err != nil {
		t.Fatalf("NewRotation: %v", err)
	}
	a := FromRotation(rot)
	b := FromTranslation(NewTranslation(meterVector(t, 1, 2, 3)))

	composed, err := a.Compose(b)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	p := meterPoint(t, 0.5, -1, 2)
	step, err := b.ApplyToPoint(p)
	if err != nil {
		t.Fatalf("b apply: %v", err)
	}
	want, err := a.ApplyToPoint(step)
	if err != nil {
		t.Fatalf("a apply: %v", err)
	}
	got, err := composed.ApplyToPoint(p)
	if err != nil {
		t.Fatalf("composed apply: %v", err)
	}
	pointClose(t, got, want.X(), want.Y(), want.Z())
}

func TestAffineInverseRoundTrip(t *testing.T) {
	rot, err := NewRotation(AxisX, radians(0.3))
	if err != nil {
		t.Fatalf("NewRotation: %v", err)
	}
	a, err := FromRotation(rot).Compose(FromTranslation(NewTranslation(meterVector(t, -1, 4, 2))))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	p := meterPoint(t, 7, 8, 9)
	forward, err := a.ApplyToPoint(p)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	back, err := inv.ApplyToPoint(forward)
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	pointClose(t, back, 7, 8, 9)
}

func TestHomogeneousFromAffineMatchesAffine(t *testing.T) {
	rot, err := NewRotation(AxisZ, radians(0.9))
	if err != nil {
		t.Fatalf("NewRotation: %v", err)
	}
	a, err := FromRotation(rot).Compose(FromTranslation(NewTranslation(meterVector(t, 2, 0, -1))))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	h, err := FromAffine(a)
	if err != nil {
		t.Fatalf("FromAffine: %v", err)
	}
	p := meterPoint(t, 1, 2, 3)
	want, err := a.ApplyToPoint(p)
	if err != nil {
		t.Fatalf("affine apply: %v", err)
	}
	got, err := h.ApplyToPoint(p)
	if err != nil {
		t.Fatalf("homogeneous apply: %v", err)
	}
	pointClose(t, got, want.X(), want.Y(), want.Z())
}

func TestHomogeneousPerspectiveDivideByZero(t *testing.T) {
	// Bottom row maps every point's weight to zero.
	m := algebra.MustMatrix([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
	})
	h, err := NewHomogeneous(m)
	if err != nil {
		t.Fatalf("NewHomogeneous: %v", err)
	}
	_, err = h.ApplyToPoint(meterPoint(t, 1, 1, 1))
	var divErr *PerspectiveDivideError
	if !errors.As(err, &divErr) {
		t.Fatalf("expected PerspectiveDivideError, got %v", err)
	}
}

func TestHomogeneousVectorIgnoresTranslation(t *testing.T) {
	a := FromTranslation(NewTranslation(meterVector(t, 5, 5, 5)))
	h, err := FromAffine(a)
	if err != nil {
		t.Fatalf("FromAffine: %v", err)
	}
	v := meterVector(t, 1, 0, 0)
	got, err := h.ApplyToVector(v)
	if err != nil {
		t.Fatalf("ApplyToVector: %v", err)
	}
	if !got.Equal(v) {
		t.Fatalf("direction changed under pure translation: %s", got)
	}
}
